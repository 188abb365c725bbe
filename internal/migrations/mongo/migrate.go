package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flamesblue/internal/migrations/mongo/validators"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
)

// CollectionDefinition is the schema validator and index set applied to one
// collection.
type CollectionDefinition struct {
	Name      string
	Validator bson.M
	Indexes   []mongo.IndexModel
}

var (
	UserIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("phone_unique"),
		},
	}

	VehicleIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	BookingIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "vehicle_id", Value: 1}}},
	}

	OtpIndexes = []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "phone", Value: 1},
			{Key: "created_at", Value: -1},
		}},
	}

	SupportMessageIndexes = []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "created_at", Value: 1},
		}},
	}
)

// Definitions lists every collection in creation order.
func Definitions() []CollectionDefinition {
	return []CollectionDefinition{
		{Name: model.CollectionUser, Validator: validators.UserValidator, Indexes: UserIndexes},
		{Name: model.CollectionVehicle, Validator: validators.VehicleValidator, Indexes: VehicleIndexes},
		{Name: model.CollectionBooking, Validator: validators.BookingValidator, Indexes: BookingIndexes},
		{Name: model.CollectionOtp, Validator: validators.OtpValidator, Indexes: OtpIndexes},
		{Name: model.CollectionSupportMessage, Validator: validators.SupportMessageValidator, Indexes: SupportMessageIndexes},
	}
}

// RunMigration creates missing collections, refreshes validators on existing
// ones and ensures indexes. It is safe to run repeatedly. The unique phone
// index fails if duplicate users already exist.
func RunMigration(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	log.Info("Running Mongo migrations", "database", db.Name())

	for _, def := range Definitions() {
		if err := ensureCollection(ctx, db, def.Name, def.Validator, log); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", def.Name, err)
		}
		if err := ensureIndexes(ctx, db, def.Name, def.Indexes, log); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", def.Name, err)
		}
	}

	log.Info("All migrations applied successfully")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M, log *logger.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	log.Info("Collection exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		log.Warn("Failed updating validator", "collection", name, "error", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel, log *logger.Logger) error {
	if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
		return err
	}
	log.Info("Ensured indexes", "collection", name, "count", len(models))
	return nil
}
