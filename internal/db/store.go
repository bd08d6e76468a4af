package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KeisukeTTTT/estate-management/internal/models"
)

// IStore is the storage collaborator consumed by the pipeline and the read projections.
type IStore interface {
	Insert(ctx context.Context, kind models.Kind, entity models.IBase) error
	Exists(ctx context.Context, kind models.Kind, id string) (bool, error)
	FindMany(ctx context.Context, kind models.Kind, q Query, out any) error
}

// Store keeps one Mongo collection per entity kind.
type Store struct {
	db  *mongo.Database
	now func() time.Time
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db, now: time.Now}
}

// Insert assigns the id and creation time, then writes entity as one document.
// Errors are classified; see Classify.
func (s *Store) Insert(ctx context.Context, kind models.Kind, entity models.IBase) error {
	entity.Stamp(s.now())
	if _, err := s.db.Collection(kind.Collection()).InsertOne(ctx, entity); err != nil {
		return Classify(fmt.Sprintf("insert %s", kind), err)
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, kind models.Kind, id string) (bool, error) {
	n, err := s.db.Collection(kind.Collection()).CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, Classify(fmt.Sprintf("lookup %s", kind), err)
	}
	return n > 0, nil
}

// FindMany decodes every record matching q into out, which must point to a slice.
func (s *Store) FindMany(ctx context.Context, kind models.Kind, q Query, out any) error {
	op := fmt.Sprintf("find %s", kind)
	cursor, err := s.db.Collection(kind.Collection()).Aggregate(ctx, q.Pipeline())
	if err != nil {
		return Classify(op, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return Classify(op, err)
	}
	return nil
}
