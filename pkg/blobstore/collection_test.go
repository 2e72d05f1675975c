package blobstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"primering/pkg/blobstore"
)

type note struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

func TestCollection(t *testing.T) {
	ctx := context.Background()
	gw, err := blobstore.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	c := blobstore.NewCollection[note](gw, "notes.json")

	_, ok, err := c.All(ctx)
	if err != nil || ok {
		t.Fatalf("All on missing blob = ok %v, err %v", ok, err)
	}

	err = c.Update(ctx, func(items []note, exists bool) ([]note, error) {
		if exists {
			t.Error("exists should be false before the first save")
		}
		return append(items, note{ID: 1, Text: "a"}), nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	failure := errors.New("boom")
	err = c.Update(ctx, func(items []note, _ bool) ([]note, error) {
		return nil, failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("Update error = %v, want %v", err, failure)
	}

	items, ok, err := c.All(ctx)
	if err != nil || !ok {
		t.Fatalf("All = ok %v, err %v", ok, err)
	}
	if len(items) != 1 || items[0].Text != "a" {
		t.Errorf("items = %+v, failed update must not be saved", items)
	}
}

func TestCollection_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	gw, err := blobstore.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	c := blobstore.NewCollection[note](gw, "notes.json")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = c.Update(ctx, func(items []note, _ bool) ([]note, error) {
				return append(items, note{ID: i}), nil
			})
		}(i)
	}
	wg.Wait()

	items, _, err := c.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(items) != 20 {
		t.Errorf("got %d items, want 20", len(items))
	}
}
