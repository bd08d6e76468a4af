package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/KeisukeTTTT/estate-management/internal/models"
)

var indexes = map[models.Kind][]string{
	models.KindRoom:        {"property_id"},
	models.KindContract:    {"room_id", "contractor_id"},
	models.KindTransaction: {"contract_id"},
	models.KindInquiry:     {"contractor_id"},
	models.KindContractor:  {"name"},
}

// EnsureIndexes creates the lookup indexes used by reference resolution and listings. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for kind, fields := range indexes {
		specs := make([]mongo.IndexModel, 0, len(fields))
		for _, field := range fields {
			specs = append(specs, mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}})
		}
		if _, err := db.Collection(kind.Collection()).Indexes().CreateMany(ctx, specs); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", kind, err)
		}
	}
	return nil
}
