package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/KeisukeTTTT/estate-management/internal/cache"
	"github.com/KeisukeTTTT/estate-management/internal/db"
	"github.com/KeisukeTTTT/estate-management/internal/models"
	"github.com/KeisukeTTTT/estate-management/internal/pipeline"
	"github.com/KeisukeTTTT/estate-management/internal/validation"
)

type IPropertyService interface {
	CreateProperty(ctx context.Context, raw validation.Raw) pipeline.Outcome
	ListProperties(ctx context.Context) ([]models.PropertyRow, error)
	RoomOptions(ctx context.Context) ([]models.RoomWithProperty, error)
}

type propertyService struct {
	runner *pipeline.Runner
	reader listingReader
}

var propertyMutation = pipeline.Mutation[validation.PropertyInput]{
	Kind:           models.KindProperty,
	OnSuccess:      pipeline.Redirect,
	SuccessMessage: "Property created.",
	Validate:       validation.ValidateProperty,
	Build: func(in validation.PropertyInput) models.IBase {
		return &models.Property{Name: in.Name, Address: in.Address, Type: in.Type}
	},
}

func NewPropertyService(store db.IStore, runner *pipeline.Runner, listings cache.IListingCache, logger *zap.Logger) IPropertyService {
	return &propertyService{
		runner: runner,
		reader: listingReader{store: store, cache: listings, logger: logger},
	}
}

func (s *propertyService) CreateProperty(ctx context.Context, raw validation.Raw) pipeline.Outcome {
	return pipeline.Run(ctx, s.runner, propertyMutation, raw)
}

func (s *propertyService) ListProperties(ctx context.Context) ([]models.PropertyRow, error) {
	path := models.KindProperty.ListingPath()
	return findCached(ctx, s.reader, cache.Key(path), models.KindProperty, propertyListQuery(), (*models.PropertyRow).Decorate)
}

// RoomOptions lists every room with its property, for the contract form's room selector.
// Rooms are only created by seeding, which invalidates the rooms path.
func (s *propertyService) RoomOptions(ctx context.Context) ([]models.RoomWithProperty, error) {
	path := models.KindRoom.ListingPath()
	return findCached[models.RoomWithProperty](ctx, s.reader, cache.Key(path, "options"), models.KindRoom, roomOptionsQuery(), nil)
}
