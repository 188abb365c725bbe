package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"flamesblue/pkg/client"
)

type MongoConfig struct {
	Client       *client.Client
	DatabaseName string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type mongoStore struct {
	cfg MongoConfig
}

// NewMongoStore returns a Store over the shared client. The connection is
// resolved on every call, so a store built while the database is down
// reports ErrNotConnected instead of failing construction.
func NewMongoStore(cfg MongoConfig) Store {
	return &mongoStore{cfg: cfg}
}

func (s *mongoStore) database() (*mongo.Database, error) {
	if s.cfg.Client == nil {
		return nil, ErrNotConnected
	}
	mc, err := s.cfg.Client.MongoClient()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConnected, err)
	}
	if s.cfg.DatabaseName == "" {
		return nil, fmt.Errorf("%w: database name not set", ErrNotConnected)
	}
	return mc.Database(s.cfg.DatabaseName), nil
}

// withTimeout bounds ctx by timeout unless ctx already expires sooner.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}

	return context.WithTimeout(ctx, timeout)
}

func (s *mongoStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	db, err := s.database()
	if err != nil {
		return "", err
	}

	ctx, cancel := withTimeout(ctx, s.cfg.WriteTimeout)
	defer cancel()

	result, err := db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	return idString(result.InsertedID), nil
}

func (s *mongoStore) FetchAll(ctx context.Context, collection string, out any) error {
	if err := checkSlicePtr(out); err != nil {
		return err
	}

	db, err := s.database()
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.cfg.ReadTimeout)
	defer cancel()

	cursor, err := db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to find %s documents: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s documents: %w", collection, err)
	}

	ensureNonNilSlice(out)
	return nil
}

func (s *mongoStore) FindLatest(ctx context.Context, collection string, filter Filter, sortField string, out any) error {
	db, err := s.database()
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.cfg.ReadTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{
		{Key: sortField, Value: -1},
		{Key: "_id", Value: -1},
	})

	err = db.Collection(collection).FindOne(ctx, bson.M(filter), opts).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to find latest %s document: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) InsertIfAbsent(ctx context.Context, collection string, filter Filter, doc any) (bool, error) {
	db, err := s.database()
	if err != nil {
		return false, err
	}

	ctx, cancel := withTimeout(ctx, s.cfg.WriteTimeout)
	defer cancel()

	update := bson.M{"$setOnInsert": doc}
	result, err := db.Collection(collection).UpdateOne(ctx, bson.M(filter), update, options.Update().SetUpsert(true))
	if err != nil {
		// Two concurrent upserts can both miss the filter; the unique index
		// rejects the second one.
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to upsert into %s: %w", collection, err)
	}

	return result.UpsertedCount > 0, nil
}

func (s *mongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.cfg.ReadTimeout)
	defer cancel()

	names, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

func (s *mongoStore) Ping(ctx context.Context) error {
	db, err := s.database()
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.cfg.ReadTimeout)
	defer cancel()

	if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}
	return nil
}

func idString(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}

func checkSlicePtr(out any) error {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("out must be a non-nil pointer to a slice, got %T", out)
	}
	return nil
}

func ensureNonNilSlice(out any) {
	v := reflect.ValueOf(out).Elem()
	if v.IsNil() {
		v.Set(reflect.MakeSlice(v.Type(), 0, 0))
	}
}
