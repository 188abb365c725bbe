package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testDoc struct {
	ID        string    `bson:"_id,omitempty"`
	Phone     string    `bson:"phone"`
	Code      string    `bson:"code"`
	Tags      []string  `bson:"tags"`
	CreatedAt time.Time `bson:"created_at"`
}

func TestMemoryStore_InsertAndFetchAll(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		id, err := s.Insert(ctx, "otp", testDoc{Phone: "+15550000000", Code: "123456"})
		require.NoError(t, err)
		assert.True(t, primitive.IsValidObjectID(id), "id %q is not an object id", id)
		ids[id] = true
	}
	assert.Len(t, ids, 3)

	var docs []testDoc
	require.NoError(t, s.FetchAll(ctx, "otp", &docs))
	require.Len(t, docs, 3)
	for _, doc := range docs {
		assert.True(t, ids[doc.ID])
	}
}

func TestMemoryStore_FetchAllEmptyIsNonNil(t *testing.T) {
	s := NewMemoryStore()

	var docs []testDoc
	require.NoError(t, s.FetchAll(context.Background(), "vehicle", &docs))
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestMemoryStore_FetchAllRejectsNonSlice(t *testing.T) {
	s := NewMemoryStore()

	var doc testDoc
	assert.Error(t, s.FetchAll(context.Background(), "vehicle", &doc))
}

func TestMemoryStore_FindLatest(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := s.Insert(ctx, "otp", testDoc{Phone: "+1", Code: "111111", CreatedAt: base})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "otp", testDoc{Phone: "+1", Code: "222222", CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "otp", testDoc{Phone: "+2", Code: "333333", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)

	var got testDoc
	require.NoError(t, s.FindLatest(ctx, "otp", Filter{"phone": "+1"}, "created_at", &got))
	assert.Equal(t, "222222", got.Code)
	assert.True(t, got.CreatedAt.Equal(base.Add(time.Minute)))
}

func TestMemoryStore_FindLatestTieGoesToLastInsert(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := s.Insert(ctx, "otp", testDoc{Phone: "+1", Code: "111111", CreatedAt: at})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "otp", testDoc{Phone: "+1", Code: "222222", CreatedAt: at})
	require.NoError(t, err)

	var got testDoc
	require.NoError(t, s.FindLatest(ctx, "otp", Filter{"phone": "+1"}, "created_at", &got))
	assert.Equal(t, "222222", got.Code)
}

func TestMemoryStore_FindLatestNotFound(t *testing.T) {
	s := NewMemoryStore()

	var got testDoc
	err := s.FindLatest(context.Background(), "otp", Filter{"phone": "+1"}, "created_at", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	inserted, err := s.InsertIfAbsent(ctx, "user", Filter{"phone": "+1"}, testDoc{Phone: "+1"})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.InsertIfAbsent(ctx, "user", Filter{"phone": "+1"}, testDoc{Phone: "+1"})
	require.NoError(t, err)
	assert.False(t, inserted)

	assert.Equal(t, 1, s.Count("user"))
}

func TestMemoryStore_InsertIfAbsentConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.InsertIfAbsent(ctx, "user", Filter{"phone": "+1"}, testDoc{Phone: "+1"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, s.Count("user"))
}

func TestMemoryStore_CollectionNames(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	names, err := s.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = s.Insert(ctx, "vehicle", testDoc{})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "booking", testDoc{})
	require.NoError(t, err)

	names, err = s.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"booking", "vehicle"}, names)
}

func TestMemoryStore_Failure(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.SetFailure(errors.New("server selection timeout"))

	_, err := s.Insert(ctx, "vehicle", testDoc{})
	assert.ErrorIs(t, err, ErrNotConnected)

	var docs []testDoc
	assert.ErrorIs(t, s.FetchAll(ctx, "vehicle", &docs), ErrNotConnected)
	assert.ErrorIs(t, s.Ping(ctx), ErrNotConnected)

	s.SetFailure(nil)
	assert.NoError(t, s.Ping(ctx))
}
