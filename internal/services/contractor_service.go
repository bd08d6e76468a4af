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

type IContractorService interface {
	CreateContractor(ctx context.Context, raw validation.Raw) pipeline.Outcome
	ListContractors(ctx context.Context) ([]models.Contractor, error)
	ContractorOptions(ctx context.Context) ([]models.Contractor, error)
}

type contractorService struct {
	runner *pipeline.Runner
	reader listingReader
}

// Contractors are created from a modal on other forms, so success is reported in place.
var contractorMutation = pipeline.Mutation[validation.ContractorInput]{
	Kind:           models.KindContractor,
	OnSuccess:      pipeline.Return,
	SuccessMessage: "Contractor created successfully.",
	Validate:       validation.ValidateContractor,
	Build: func(in validation.ContractorInput) models.IBase {
		return &models.Contractor{
			Name:          in.Name,
			Contact:       in.Contact,
			Address:       in.Address,
			IsCorporation: in.IsCorporation,
		}
	},
}

func NewContractorService(store db.IStore, runner *pipeline.Runner, listings cache.IListingCache, logger *zap.Logger) IContractorService {
	return &contractorService{
		runner: runner,
		reader: listingReader{store: store, cache: listings, logger: logger},
	}
}

func (s *contractorService) CreateContractor(ctx context.Context, raw validation.Raw) pipeline.Outcome {
	return pipeline.Run(ctx, s.runner, contractorMutation, raw)
}

func (s *contractorService) ListContractors(ctx context.Context) ([]models.Contractor, error) {
	path := models.KindContractor.ListingPath()
	return findCached[models.Contractor](ctx, s.reader, cache.Key(path), models.KindContractor, contractorListQuery(), nil)
}

// ContractorOptions lists contractors by name for selectors.
func (s *contractorService) ContractorOptions(ctx context.Context) ([]models.Contractor, error) {
	path := models.KindContractor.ListingPath()
	return findCached[models.Contractor](ctx, s.reader, cache.Key(path, "options"), models.KindContractor, contractorOptionsQuery(), nil)
}
