package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Status reports how a Record value was obtained.
type Status int

const (
	// StatusAbsent means the key was not set; the default value was returned.
	StatusAbsent Status = iota
	// StatusPresent means the stored value was decoded and validated.
	StatusPresent
	// StatusMalformed means stored text existed but could not be decoded or
	// failed validation; the default value was returned.
	StatusMalformed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusPresent:
		return "present"
	case StatusMalformed:
		return "malformed"
	default:
		return "absent"
	}
}

// Record is a typed view of a single Store key encoded as JSON.
type Record[T any] struct {
	store    Store
	key      string
	validate func(T) error
	fallback func() T
}

// RecordOption configures a Record.
type RecordOption[T any] func(*Record[T])

// WithValidator sets a validation step run after decoding.
// A validation error makes Load report StatusMalformed.
func WithValidator[T any](fn func(T) error) RecordOption[T] {
	return func(r *Record[T]) {
		r.validate = fn
	}
}

// WithDefault sets the constructor for the value returned when the record is
// absent or malformed. Defaults to the zero value of T.
func WithDefault[T any](fn func() T) RecordOption[T] {
	return func(r *Record[T]) {
		r.fallback = fn
	}
}

// NewRecord returns a Record bound to key in store.
func NewRecord[T any](store Store, key string, opts ...RecordOption[T]) *Record[T] {
	if store == nil {
		panic("kv: record store is required")
	}
	if key == "" {
		panic("kv: record key is required")
	}

	r := &Record[T]{
		store:    store,
		key:      key,
		fallback: func() T { return *new(T) },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Key returns the store key of the record.
func (r *Record[T]) Key() string {
	return r.key
}

// Load reads and decodes the record.
// The returned error is non-nil only when the backend failed; decoding and
// validation problems are reported through StatusMalformed.
func (r *Record[T]) Load(ctx context.Context) (T, Status, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return r.fallback(), StatusAbsent, nil
		}
		return r.fallback(), StatusAbsent, fmt.Errorf("kv: load %q: %w", r.key, err)
	}

	value, err := r.Decode(raw)
	if err != nil {
		return r.fallback(), StatusMalformed, nil
	}
	return value, StatusPresent, nil
}

// Decode parses raw as the record's JSON shape and validates it.
// Errors wrap ErrMalformedRecord.
func (r *Record[T]) Decode(raw string) (T, error) {
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return r.fallback(), errors.Join(ErrMalformedRecord, err)
	}
	if r.validate != nil {
		if err := r.validate(value); err != nil {
			return r.fallback(), errors.Join(ErrMalformedRecord, err)
		}
	}
	return value, nil
}

// Save encodes value as JSON and writes it.
func (r *Record[T]) Save(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv: encode %q: %w", r.key, err)
	}
	if err := r.store.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("kv: save %q: %w", r.key, err)
	}
	return nil
}

// Delete removes the record.
func (r *Record[T]) Delete(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("kv: delete %q: %w", r.key, err)
	}
	return nil
}
