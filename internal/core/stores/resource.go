package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"sacco-desk/internal/core/domain"
)

// API holds the backend calls one resource store delegates to. Stores that
// do not support an operation leave the corresponding function nil and do
// not expose it.
type API[T any] struct {
	Fetch  func(ctx context.Context, token string, q url.Values) ([]T, error)
	Create func(ctx context.Context, token string, payload map[string]interface{}) (*T, error)
	Update func(ctx context.Context, token string, id uint, patch map[string]interface{}) error
	Delete func(ctx context.Context, token string, id uint) error
}

// Resource is the shared core of every resource store: one in-memory
// collection owned by the store, replaced wholesale on fetch and patched in
// place on create/update/delete.
//
// A fetch completing after a later-issued fetch is discarded, so stale
// responses can never overwrite newer data. Mutations are applied
// optimistically from the server's success response and are not rolled
// back by later unrelated fetches.
type Resource[T any] struct {
	mu      sync.RWMutex
	session *Session
	api     API[T]
	id      func(T) uint

	items    []T
	lastErr  error
	inflight int
	seq      uint64
}

func (r *Resource[T]) init(session *Session, api API[T], id func(T) uint) {
	r.session = session
	r.api = api
	r.id = id
}

// begin captures the credential for one operation and reserves a fetch
// sequence slot.
func (r *Resource[T]) begin() (token string, seq uint64) {
	token = r.session.Token()
	r.mu.Lock()
	r.seq++
	seq = r.seq
	r.inflight++
	r.mu.Unlock()
	return token, seq
}

// complete applies a fetch result under the sequencing rule: a completion
// is stale once a newer fetch has been issued, and a stale completion never
// touches the collection. The caller still receives its own error.
func (r *Resource[T]) complete(seq uint64, items []T, err error) (applied bool, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inflight--

	if seq < r.seq {
		return false, err
	}
	if err != nil {
		// Failed reads leave the collection untouched; the error is kept
		// for observers because a dashboard of independent widgets must
		// not crash on one failed read.
		r.lastErr = err
		return false, err
	}
	r.items = items
	r.lastErr = nil
	return true, nil
}

// fetch replaces the collection with the backend's response for the given
// (already cleaned) query.
func (r *Resource[T]) fetch(ctx context.Context, q url.Values) error {
	token, seq := r.begin()
	items, err := r.api.Fetch(ctx, token, q)
	_, err = r.complete(seq, items, err)
	return err
}

// create issues the write and appends the server's returned record.
func (r *Resource[T]) create(ctx context.Context, payload map[string]interface{}) (*T, error) {
	token := r.session.Token()
	record, err := r.api.Create(ctx, token, payload)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.items = append(r.items, *record)
	r.mu.Unlock()

	out := *record
	return &out, nil
}

// update issues the write and shallow-merges the patch into the matching
// record, leaving every other record untouched.
func (r *Resource[T]) update(ctx context.Context, id uint, patch map[string]interface{}) error {
	token := r.session.Token()
	if err := r.api.Update(ctx, token, id, patch); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if r.id(item) != id {
			continue
		}
		merged, err := mergePatch(item, patch)
		if err != nil {
			return err
		}
		r.items[i] = merged
		return nil
	}
	return nil
}

// delete issues the delete and removes the record. A record the backend no
// longer has ("already gone") counts as success: the cache converges either
// way.
func (r *Resource[T]) delete(ctx context.Context, id uint) error {
	token := r.session.Token()
	if err := r.api.Delete(ctx, token, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, item := range r.items {
		if r.id(item) != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

// replaceRecord swaps in the server's copy of one record, used where the
// server computes the update (transaction processing). No-op when the
// record is not cached.
func (r *Resource[T]) replaceRecord(record T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.id(record)
	for i, item := range r.items {
		if r.id(item) == id {
			r.items[i] = record
			return
		}
	}
}

// append adds one record to the collection (optimistic create).
func (r *Resource[T]) append(record T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, record)
}

// Items returns a copy of the in-memory collection.
func (r *Resource[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Err returns the last fetch error, or nil after a successful fetch.
func (r *Resource[T]) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// Loading reports whether any fetch is in flight.
func (r *Resource[T]) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.inflight > 0
}

// mergePatch shallow-merges patch keys (JSON field names) into a record.
func mergePatch[T any](record T, patch map[string]interface{}) (T, error) {
	var zero T

	encoded, err := json.Marshal(record)
	if err != nil {
		return zero, fmt.Errorf("merge patch: %w", err)
	}
	fields := map[string]interface{}{}
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return zero, fmt.Errorf("merge patch: %w", err)
	}
	for key, value := range patch {
		fields[key] = value
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return zero, fmt.Errorf("merge patch: %w", err)
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, fmt.Errorf("merge patch: %w", err)
	}
	return out, nil
}
