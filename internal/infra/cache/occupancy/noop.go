package occupancy

import (
	"context"
	"time"
)

// Noop заглушка кеша занятости для конфигураций без Redis.
// Всегда промахивается, инвалидация - no-op.
type Noop struct{}

// NewNoop создает заглушку кеша
func NewNoop() *Noop {
	return &Noop{}
}

// Get всегда возвращает промах
func (n *Noop) Get(_ context.Context, _ time.Time) (map[string]int, error) {
	return nil, nil
}

// Set ничего не сохраняет
func (n *Noop) Set(_ context.Context, _ time.Time, _ map[string]int) error {
	return nil
}

// InvalidateDate ничего не делает
func (n *Noop) InvalidateDate(_ context.Context, _ time.Time) error {
	return nil
}
