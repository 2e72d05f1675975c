package blobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Collection is a JSON array of T stored under a single blob name.
// Every mutation loads the whole array, applies a change and saves it back;
// mutations through one Collection are serialized.
type Collection[T any] struct {
	gw   Gateway
	name string
	mu   sync.Mutex
}

// NewCollection binds a JSON array blob.
func NewCollection[T any](gw Gateway, name string) *Collection[T] {
	return &Collection[T]{gw: gw, name: name}
}

// Name returns the blob name.
func (c *Collection[T]) Name() string {
	return c.name
}

// All returns the stored items. ok is false when the blob does not exist yet.
func (c *Collection[T]) All(ctx context.Context) (items []T, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Update applies fn to the stored items and saves its result.
// Nothing is saved when fn returns an error.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T, exists bool) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, exists, err := c.load(ctx)
	if err != nil {
		return err
	}
	items, err = fn(items, exists)
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("blobstore: encode %s: %w", c.name, err)
	}
	return c.gw.Save(ctx, c.name, data)
}

func (c *Collection[T]) load(ctx context.Context) ([]T, bool, error) {
	data, err := c.gw.Load(ctx, c.name)
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, true, fmt.Errorf("blobstore: decode %s: %w", c.name, err)
	}
	return items, true, nil
}
