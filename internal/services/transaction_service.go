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

type ITransactionService interface {
	CreateTransaction(ctx context.Context, raw validation.Raw) pipeline.Outcome
	ListTransactions(ctx context.Context) ([]models.TransactionWithContract, error)
}

type transactionService struct {
	runner *pipeline.Runner
	reader listingReader
}

var transactionMutation = pipeline.Mutation[validation.TransactionInput]{
	Kind:           models.KindTransaction,
	OnSuccess:      pipeline.Redirect,
	SuccessMessage: "Transaction recorded.",
	Validate:       validation.ValidateTransaction,
	References:     validation.TransactionInput.References,
	Build: func(in validation.TransactionInput) models.IBase {
		return &models.Transaction{
			TransactionDate: in.TransactionDate,
			Type:            in.Type,
			Amount:          in.Amount,
			Description:     in.Description,
			ContractID:      in.ContractID,
		}
	},
}

func NewTransactionService(store db.IStore, runner *pipeline.Runner, listings cache.IListingCache, logger *zap.Logger) ITransactionService {
	return &transactionService{
		runner: runner,
		reader: listingReader{store: store, cache: listings, logger: logger},
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, raw validation.Raw) pipeline.Outcome {
	return pipeline.Run(ctx, s.runner, transactionMutation, raw)
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]models.TransactionWithContract, error) {
	path := models.KindTransaction.ListingPath()
	return findCached(ctx, s.reader, cache.Key(path), models.KindTransaction, transactionListQuery(), (*models.TransactionWithContract).Decorate)
}
