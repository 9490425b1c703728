// Package store is a typed key-value repository over a raw Backend. Values are
// JSON-encoded under a namespaced key. An absent key or a malformed stored
// value reads as the caller's default. Lookup reports backend errors; Get
// swallows them too, for read-only callers.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// KV namespaces keys and owns the JSON encoding for a Backend.
type KV struct {
	backend   Backend
	namespace string
	logger    *slog.Logger
}

func New(backend Backend, namespace string, logger *slog.Logger) *KV {
	if logger == nil {
		logger = slog.Default()
	}
	return &KV{backend: backend, namespace: namespace, logger: logger}
}

// Key returns the namespaced key a collection is stored under.
func (kv *KV) Key(name string) string {
	return kv.namespace + name
}

// Lookup reads the value stored under name. def is returned when the key is
// absent or its value is malformed; a failing backend is an error. Use it
// before writing back, so a failed read never overwrites stored data.
func Lookup[T any](ctx context.Context, kv *KV, name string, def T) (T, error) {
	key := kv.Key(name)
	raw, ok, err := kv.backend.Load(ctx, key)
	if err != nil {
		return def, fmt.Errorf("load %s: %w", name, err)
	}
	if !ok {
		return def, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		kv.logger.Warn("stored value is malformed, using default", "key", key, "error", err)
		return def, nil
	}
	return v, nil
}

// Get is Lookup for display: a backend error also yields def.
func Get[T any](ctx context.Context, kv *KV, name string, def T) T {
	v, err := Lookup(ctx, kv, name, def)
	if err != nil {
		kv.logger.Warn("store load failed, using default", "key", kv.Key(name), "error", err)
		return def
	}
	return v
}

// Set replaces the value stored under name.
func Set[T any](ctx context.Context, kv *KV, name string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := kv.backend.Save(ctx, kv.Key(name), raw); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
