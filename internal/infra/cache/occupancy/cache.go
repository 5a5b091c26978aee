package occupancy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
)

// Cache кеширует в Redis карты занятости (дата -> количество подтверждённых
// бронирований) по месяцам. Используется агрегатором календаря, чтобы не
// агрегировать таблицу bookings на каждый рендер.
//
// Кеш не является источником истины: промахи и ошибки Redis приводят к
// пересчёту из БД, а создание/отмена бронирования инвалидируют месяц даты.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient создает клиент Redis из конфигурации
func NewClient(address, password string, db, poolSize int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
		PoolSize: poolSize,
	})
}

// NewCache создает кеш занятости с заданным TTL
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Get возвращает карту занятости месяца или (nil, nil) при промахе
func (c *Cache) Get(ctx context.Context, month time.Time) (map[string]int, error) {
	val, err := c.client.Get(ctx, monthKey(month)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("occupancy cache: failed to get month: %w", err)
	}

	var counts map[string]int
	if err := json.Unmarshal([]byte(val), &counts); err != nil {
		return nil, fmt.Errorf("occupancy cache: failed to unmarshal counts: %w", err)
	}

	return counts, nil
}

// Set сохраняет карту занятости месяца с TTL
func (c *Cache) Set(ctx context.Context, month time.Time, counts map[string]int) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("occupancy cache: failed to marshal counts: %w", err)
	}

	if err := c.client.Set(ctx, monthKey(month), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("occupancy cache: failed to set month: %w", err)
	}

	return nil
}

// InvalidateDate сбрасывает кеш месяца, в который попадает дата.
// Вызывается после создания и отмены бронирования.
func (c *Cache) InvalidateDate(ctx context.Context, date time.Time) error {
	if err := c.client.Del(ctx, monthKey(date)).Err(); err != nil {
		return fmt.Errorf("occupancy cache: failed to invalidate month: %w", err)
	}
	return nil
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("occupancy:%s", t.Format(domain.MonthFormat))
}
