package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	"github.com/KKKircheff/GTP-BookingService/pkg/types"
)

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Schedule ScheduleConfig `toml:"schedule"`
	Pricing  PricingConfig  `toml:"pricing"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // секунды
	WriteTimeout    int    `toml:"write_timeout"`    // секунды
	IdleTimeout     int    `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int    `toml:"shutdown_timeout"` // секунды
	AdminToken      string `toml:"admin_token"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки Redis для кеша занятости календаря
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Address    string `toml:"address"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	PoolSize   int    `toml:"pool_size"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// TTL возвращает время жизни кеша занятости
func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// ScheduleConfig рабочее расписание станции и сетка слотов
type ScheduleConfig struct {
	BusinessStart       string `toml:"business_start"` // "HH:MM"
	BusinessEnd         string `toml:"business_end"`   // "HH:MM"
	WorkingDays         []int  `toml:"working_days"`   // time.Weekday, Sunday = 0
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	MaxAdvanceWeeks     int    `toml:"max_advance_weeks"` // 0 = без ограничения
}

// PricingConfig цены техосмотра по типам транспорта
type PricingConfig struct {
	Prices         map[string]int `toml:"prices"` // тип транспорта -> базовая цена, лв.
	OnlineDiscount int            `toml:"online_discount"`
}

// Load читает конфигурацию из TOML файла, применяет дефолты и валидирует.
// Пароль БД и админ-токен можно переопределить через переменные окружения
// GTP_DB_PASSWORD и GTP_ADMIN_TOKEN (загружаются из .env в main).
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "gtp-booking-service"
	}

	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
	if c.Redis.TTLSeconds == 0 {
		c.Redis.TTLSeconds = 120
	}

	if c.Schedule.BusinessStart == "" {
		c.Schedule.BusinessStart = domain.DefaultBusinessStart
	}
	if c.Schedule.BusinessEnd == "" {
		c.Schedule.BusinessEnd = domain.DefaultBusinessEnd
	}
	if len(c.Schedule.WorkingDays) == 0 {
		for _, wd := range domain.DefaultWorkingDays {
			c.Schedule.WorkingDays = append(c.Schedule.WorkingDays, int(wd))
		}
	}
	if c.Schedule.SlotDurationMinutes == 0 {
		c.Schedule.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
}

func (c *Config) applyEnvOverrides() {
	if password := os.Getenv("GTP_DB_PASSWORD"); password != "" {
		c.Database.Password = password
	}
	if token := os.Getenv("GTP_ADMIN_TOKEN"); token != "" {
		c.Server.AdminToken = token
	}
}

func (c *Config) validate() error {
	// Пустой токен заблокировал бы все админские маршруты.
	if c.Server.AdminToken == "" {
		return fmt.Errorf("%w: server.admin_token is required", ErrInvalidConfig)
	}

	start, err := types.NewTimeStringFromString(c.Schedule.BusinessStart)
	if err != nil {
		return fmt.Errorf("%w: schedule.business_start: %v", ErrInvalidConfig, err)
	}
	end, err := types.NewTimeStringFromString(c.Schedule.BusinessEnd)
	if err != nil {
		return fmt.Errorf("%w: schedule.business_end: %v", ErrInvalidConfig, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: business_start must be before business_end", ErrInvalidConfig)
	}

	if c.Schedule.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		c.Schedule.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot_duration_minutes must be between %d and %d",
			ErrInvalidConfig, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	for _, day := range c.Schedule.WorkingDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: working_days entries must be 0..6 (Sunday = 0)", ErrInvalidConfig)
		}
	}

	if c.Schedule.MaxAdvanceWeeks < 0 {
		return fmt.Errorf("%w: max_advance_weeks must not be negative", ErrInvalidConfig)
	}

	for raw, price := range c.Pricing.Prices {
		if _, err := domain.ParseVehicleType(raw); err != nil {
			return fmt.Errorf("%w: pricing.prices: %v", ErrInvalidConfig, err)
		}
		if price < 0 {
			return fmt.Errorf("%w: pricing.prices[%s] must not be negative", ErrInvalidConfig, raw)
		}
	}
	if c.Pricing.OnlineDiscount < 0 {
		return fmt.Errorf("%w: pricing.online_discount must not be negative", ErrInvalidConfig)
	}

	return nil
}

// ToDomainSchedule конвертирует конфигурацию расписания в доменную модель
func (c *Config) ToDomainSchedule() domain.ScheduleConfig {
	days := make([]time.Weekday, 0, len(c.Schedule.WorkingDays))
	for _, day := range c.Schedule.WorkingDays {
		days = append(days, time.Weekday(day))
	}

	return domain.ScheduleConfig{
		BusinessStart:       types.TimeString(c.Schedule.BusinessStart),
		BusinessEnd:         types.TimeString(c.Schedule.BusinessEnd),
		WorkingDays:         days,
		SlotDurationMinutes: c.Schedule.SlotDurationMinutes,
		MaxAdvanceWeeks:     c.Schedule.MaxAdvanceWeeks,
	}
}

// ToDomainPriceTable конвертирует конфигурацию цен в доменную модель.
// Вызывается после validate, поэтому типы транспорта уже проверены.
func (c *Config) ToDomainPriceTable() domain.PriceTable {
	prices := make(map[domain.VehicleType]int, len(c.Pricing.Prices))
	for raw, price := range c.Pricing.Prices {
		vt, _ := domain.ParseVehicleType(raw)
		prices[vt] = price
	}

	return domain.PriceTable{
		Prices:         prices,
		OnlineDiscount: c.Pricing.OnlineDiscount,
	}
}
