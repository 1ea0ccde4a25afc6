// Package repository provides typed access to the collections persisted by
// the store. Collections are read and written whole, and lookups are linear
// scans; that is the intended design at this data scale.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"uniflow/internal/store"
)

func loadAll[T any](ctx context.Context, kv store.KV, key string) ([]T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func saveAll[T any](ctx context.Context, kv store.KV, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, raw)
}

func appendOne[T any](ctx context.Context, kv store.KV, key string, item T) error {
	items, err := loadAll[T](ctx, kv, key)
	if err != nil {
		return err
	}
	return saveAll(ctx, kv, key, append(items, item))
}
