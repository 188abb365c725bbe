package store

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store. Documents go through the same bson
// encoding as the Mongo store, so tags, ids and time truncation behave alike.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]bson.Raw
	failure     error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.Raw)}
}

// SetFailure makes every call return ErrNotConnected wrapping err until it
// is called again with nil.
func (m *MemoryStore) SetFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failure = err
}

// Count returns the number of documents in collection.
func (m *MemoryStore) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[collection])
}

func (m *MemoryStore) check() error {
	if m.failure != nil {
		return fmt.Errorf("%w: %v", ErrNotConnected, m.failure)
	}
	return nil
}

func (m *MemoryStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(); err != nil {
		return "", err
	}
	return m.insertLocked(collection, doc)
}

func (m *MemoryStore) insertLocked(collection string, doc any) (string, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	var fields bson.D
	if err := bson.Unmarshal(data, &fields); err != nil {
		return "", fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	var id any
	for _, field := range fields {
		if field.Key == "_id" {
			id = field.Value
		}
	}
	if id == nil {
		oid := primitive.NewObjectID()
		id = oid
		fields = append(bson.D{{Key: "_id", Value: oid}}, fields...)
	}

	raw, err := bson.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	m.collections[collection] = append(m.collections[collection], raw)
	return idString(id), nil
}

func (m *MemoryStore) FetchAll(ctx context.Context, collection string, out any) error {
	if err := checkSlicePtr(out); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(); err != nil {
		return err
	}

	slice := reflect.ValueOf(out).Elem()
	elemType := slice.Type().Elem()
	result := reflect.MakeSlice(slice.Type(), 0, len(m.collections[collection]))

	for _, raw := range m.collections[collection] {
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return fmt.Errorf("failed to decode %s documents: %w", collection, err)
		}
		result = reflect.Append(result, elem.Elem())
	}

	slice.Set(result)
	return nil
}

func (m *MemoryStore) FindLatest(ctx context.Context, collection string, filter Filter, sortField string, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(); err != nil {
		return err
	}

	var latest bson.Raw
	var latestKey int64
	for _, raw := range m.collections[collection] {
		ok, err := matches(raw, filter)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		key := sortKey(raw, sortField)
		if latest == nil || key >= latestKey {
			latest, latestKey = raw, key
		}
	}

	if latest == nil {
		return ErrNotFound
	}
	if err := bson.Unmarshal(latest, out); err != nil {
		return fmt.Errorf("failed to decode latest %s document: %w", collection, err)
	}
	return nil
}

func (m *MemoryStore) InsertIfAbsent(ctx context.Context, collection string, filter Filter, doc any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(); err != nil {
		return false, err
	}

	for _, raw := range m.collections[collection] {
		ok, err := matches(raw, filter)
		if err != nil {
			return false, err
		}
		if ok {
			return false, nil
		}
	}

	if _, err := m.insertLocked(collection, doc); err != nil {
		return false, err
	}
	return true, nil
}

func (m *MemoryStore) CollectionNames(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.check()
}

func matches(raw bson.Raw, filter Filter) (bool, error) {
	for key, want := range filter {
		got, err := raw.LookupErr(key)
		if err != nil {
			return false, nil
		}

		wantType, wantData, err := bson.MarshalValue(want)
		if err != nil {
			return false, fmt.Errorf("failed to encode filter value for %s: %w", key, err)
		}
		if got.Type != wantType || !bytes.Equal(got.Value, wantData) {
			return false, nil
		}
	}
	return true, nil
}

// sortKey reads a datetime or integer field as an int64; missing or other
// types sort first.
func sortKey(raw bson.Raw, field string) int64 {
	value, err := raw.LookupErr(field)
	if err != nil {
		return 0
	}
	if dt, ok := value.DateTimeOK(); ok {
		return dt
	}
	if n, ok := value.AsInt64OK(); ok {
		return n
	}
	return 0
}

var _ Store = (*MemoryStore)(nil)
