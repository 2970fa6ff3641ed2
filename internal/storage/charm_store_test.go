// ABOUTME: Unit tests for Charm-backed memory storage
// ABOUTME: Uses an in-process KV fake instead of a charm account
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/harper/vibe-memory/internal/charm"
	"github.com/harper/vibe-memory/internal/models"
)

// fakeKV mimics charm.Client with a map
type fakeKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string][]byte{}}
}

func (f *fakeKV) SetJSON(key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = b
	return nil
}

func (f *fakeKV) GetJSON(key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.data[key]
	if !ok {
		return fmt.Errorf("%w: %s", charm.ErrKeyNotFound, key)
	}
	return json.Unmarshal(b, dest)
}

func (f *fakeKV) ListKeys(prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var keys []string
	for k := range f.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func TestCharmStore_CreateAndList(t *testing.T) {
	store := NewCharmStore(newFakeKV())
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	for i, text := range []string{"first", "second", "third"} {
		_, err := store.Create(ctx, "u1", &models.Memory{
			Text:      text,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Embedding: []float64{float64(i), 1},
			Tags:      []string{"work"},
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if _, err := store.Create(ctx, "u2", &models.Memory{Text: "other user"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	memories, err := store.ListAll(ctx, "u1")
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(memories) != 3 {
		t.Fatalf("ListAll() len = %d, want 3", len(memories))
	}
	if memories[0].Text != "third" {
		t.Errorf("first result = %q, want third (newest)", memories[0].Text)
	}
	if len(memories[0].Embedding) != 2 {
		t.Errorf("Embedding not persisted: %v", memories[0].Embedding)
	}
	if memories[0].UserID != "u1" {
		t.Errorf("UserID = %q, want u1", memories[0].UserID)
	}
}

func TestCharmStore_MarkDeleted(t *testing.T) {
	store := NewCharmStore(newFakeKV())
	ctx := context.Background()

	id, _ := store.Create(ctx, "u1", &models.Memory{Text: "forget me"})
	_, _ = store.Create(ctx, "u1", &models.Memory{Text: "keep me"})

	if err := store.MarkDeleted(ctx, "u1", id); err != nil {
		t.Fatalf("MarkDeleted() error = %v", err)
	}

	memories, _ := store.ListAll(ctx, "u1")
	if len(memories) != 1 || memories[0].Text != "keep me" {
		t.Errorf("ListAll() after delete = %+v", memories)
	}
}

func TestCharmStore_MarkDeletedUnknown(t *testing.T) {
	store := NewCharmStore(newFakeKV())
	ctx := context.Background()

	id, _ := store.Create(ctx, "u1", &models.Memory{Text: "mine"})

	if err := store.MarkDeleted(ctx, "u1", "missing"); !errors.Is(err, models.ErrMemoryNotFound) {
		t.Errorf("MarkDeleted(missing) error = %v, want ErrMemoryNotFound", err)
	}
	if err := store.MarkDeleted(ctx, "u2", id); !errors.Is(err, models.ErrMemoryNotFound) {
		t.Errorf("MarkDeleted(other user) error = %v, want ErrMemoryNotFound", err)
	}
}

func TestCharmStore_Close(t *testing.T) {
	if err := NewCharmStore(newFakeKV()).Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestCharmStore_UserIDsSharingAPrefix(t *testing.T) {
	store := NewCharmStore(newFakeKV())
	ctx := context.Background()

	aliceID, _ := store.Create(ctx, "alice", &models.Memory{Text: "alice's note"})
	workID, err := store.Create(ctx, "alice:work", &models.Memory{Text: "secret of alice:work"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	memories, err := store.ListAll(ctx, "alice")
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(memories) != 1 || memories[0].ID != aliceID {
		t.Fatalf("ListAll(alice) = %+v, want only alice's memory", memories)
	}

	// alice's key prefix plus "work:<id>" is the other user's key
	if err := store.MarkDeleted(ctx, "alice", "work:"+workID); !errors.Is(err, models.ErrMemoryNotFound) {
		t.Errorf("MarkDeleted() across prefix error = %v, want ErrMemoryNotFound", err)
	}
	if got, _ := store.Get(ctx, "alice", "work:"+workID); got != nil {
		t.Errorf("Get() across prefix = %+v, want nil", got)
	}

	theirs, _ := store.ListAll(ctx, "alice:work")
	if len(theirs) != 1 || theirs[0].Deleted {
		t.Errorf("ListAll(alice:work) = %+v, want one live memory", theirs)
	}
}

func TestCharmStore_ListAllReportsUnreadableRecords(t *testing.T) {
	kv := newFakeKV()
	store := NewCharmStore(kv)
	ctx := context.Background()

	if _, err := store.Create(ctx, "bob", &models.Memory{Text: "fine"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	kv.data["memory:bob:broken"] = []byte("{not json")

	memories, err := store.ListAll(ctx, "bob")
	if err == nil {
		t.Fatalf("ListAll() = %+v, want an error for the corrupt record", memories)
	}
	if !strings.Contains(err.Error(), "memory:bob:broken") {
		t.Errorf("error = %v, should name the key", err)
	}
}

func TestCharmStore_Get(t *testing.T) {
	store := NewCharmStore(newFakeKV())
	ctx := context.Background()

	id, _ := store.Create(ctx, "u1", &models.Memory{Text: "look me up", Tags: []string{"ideas"}})

	got, err := store.Get(ctx, "u1", id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil || got.Text != "look me up" {
		t.Fatalf("Get() = %+v, want the saved memory", got)
	}

	missing, err := store.Get(ctx, "u1", "nope")
	if err != nil || missing != nil {
		t.Errorf("Get(missing) = %+v, %v; want nil, nil", missing, err)
	}
}

func TestCharmStore_CreateRejectsEmptyText(t *testing.T) {
	store := NewCharmStore(newFakeKV())
	if _, err := store.Create(context.Background(), "u1", &models.Memory{Text: "  "}); err == nil {
		t.Error("Create() with blank text should fail")
	}
	if _, err := store.Create(context.Background(), "", &models.Memory{Text: "x"}); err == nil {
		t.Error("Create() with blank user should fail")
	}
}
