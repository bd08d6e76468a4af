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

type IContractService interface {
	CreateContract(ctx context.Context, raw validation.Raw) pipeline.Outcome
	ListContracts(ctx context.Context) ([]models.ContractWithRelations, error)
	CurrentContracts(ctx context.Context) ([]models.ContractWithRelations, error)
}

type contractService struct {
	runner *pipeline.Runner
	reader listingReader
}

// Lease overlap on the same room is not checked; a new contract may share dates with
// an active one. Status is fixed at creation and has no transition operation.
var contractMutation = pipeline.Mutation[validation.ContractInput]{
	Kind:           models.KindContract,
	OnSuccess:      pipeline.Redirect,
	SuccessMessage: "Contract created.",
	Validate:       validation.ValidateContract,
	References:     validation.ContractInput.References,
	Build: func(in validation.ContractInput) models.IBase {
		return &models.Contract{
			ContractorID:  in.ContractorID,
			RoomID:        in.RoomID,
			StartDate:     in.StartDate,
			EndDate:       in.EndDate,
			Rent:          in.Rent,
			ManagementFee: in.ManagementFee,
			Deposit:       in.Deposit,
			KeyMoney:      in.KeyMoney,
			Status:        in.Status,
		}
	},
}

func NewContractService(store db.IStore, runner *pipeline.Runner, listings cache.IListingCache, logger *zap.Logger) IContractService {
	return &contractService{
		runner: runner,
		reader: listingReader{store: store, cache: listings, logger: logger},
	}
}

func (s *contractService) CreateContract(ctx context.Context, raw validation.Raw) pipeline.Outcome {
	return pipeline.Run(ctx, s.runner, contractMutation, raw)
}

func (s *contractService) ListContracts(ctx context.Context) ([]models.ContractWithRelations, error) {
	path := models.KindContract.ListingPath()
	return findCached(ctx, s.reader, cache.Key(path), models.KindContract, contractListQuery(), (*models.ContractWithRelations).Decorate)
}

// CurrentContracts lists ACTIVE, UPCOMING and RENEWAL leases by contractor then property name.
func (s *contractService) CurrentContracts(ctx context.Context) ([]models.ContractWithRelations, error) {
	path := models.KindContract.ListingPath()
	return findCached(ctx, s.reader, cache.Key(path, "current"), models.KindContract, currentContractQuery(), (*models.ContractWithRelations).Decorate)
}
