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

type IInquiryService interface {
	CreateInquiry(ctx context.Context, raw validation.Raw) pipeline.Outcome
	ListInquiries(ctx context.Context) ([]models.InquiryWithContractor, error)
}

type inquiryService struct {
	runner *pipeline.Runner
	reader listingReader
}

// New inquiries always start as RECEIVED. Moving them through IN_PROGRESS, RESOLVED
// and CLOSED has no operation yet.
var inquiryMutation = pipeline.Mutation[validation.InquiryInput]{
	Kind:           models.KindInquiry,
	OnSuccess:      pipeline.Redirect,
	SuccessMessage: "Inquiry received.",
	Validate:       validation.ValidateInquiry,
	References:     validation.InquiryInput.References,
	Build: func(in validation.InquiryInput) models.IBase {
		return &models.Inquiry{
			ContactName:  in.ContactName,
			ContactInfo:  in.ContactInfo,
			Subject:      in.Subject,
			Details:      in.Details,
			ContractorID: in.ContractorID,
			Status:       models.InquiryStatusReceived,
		}
	},
}

func NewInquiryService(store db.IStore, runner *pipeline.Runner, listings cache.IListingCache, logger *zap.Logger) IInquiryService {
	return &inquiryService{
		runner: runner,
		reader: listingReader{store: store, cache: listings, logger: logger},
	}
}

func (s *inquiryService) CreateInquiry(ctx context.Context, raw validation.Raw) pipeline.Outcome {
	return pipeline.Run(ctx, s.runner, inquiryMutation, raw)
}

func (s *inquiryService) ListInquiries(ctx context.Context) ([]models.InquiryWithContractor, error) {
	path := models.KindInquiry.ListingPath()
	return findCached(ctx, s.reader, cache.Key(path), models.KindInquiry, inquiryListQuery(), (*models.InquiryWithContractor).Decorate)
}
