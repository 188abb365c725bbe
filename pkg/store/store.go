package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by FindLatest when no document matches.
	ErrNotFound = errors.New("document not found")

	// ErrNotConnected is returned by every call while no database
	// connection is available.
	ErrNotConnected = errors.New("document store not connected")
)

// Filter is an equality filter over top-level fields.
type Filter map[string]any

// Store is the document store every service writes through. Documents are
// tagged structs; ids are generated by the store and returned as hex strings.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// FetchAll decodes every document of collection into out, which must be
	// a pointer to a slice. An empty collection yields an empty, non-nil slice.
	FetchAll(ctx context.Context, collection string, out any) error

	// FindLatest decodes into out the matching document with the greatest
	// sortField value. Ties go to the most recently inserted document.
	FindLatest(ctx context.Context, collection string, filter Filter, sortField string, out any) error

	// InsertIfAbsent inserts doc only when nothing matches filter. The check
	// and the insert are a single atomic step.
	InsertIfAbsent(ctx context.Context, collection string, filter Filter, doc any) (bool, error)

	CollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
