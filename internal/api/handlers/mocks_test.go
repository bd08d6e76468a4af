package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/KeisukeTTTT/estate-management/internal/models"
	"github.com/KeisukeTTTT/estate-management/internal/pipeline"
	"github.com/KeisukeTTTT/estate-management/internal/validation"
)

// --- Mocks ---

type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) CreateProperty(ctx context.Context, raw validation.Raw) pipeline.Outcome {
	args := m.Called(ctx, raw)
	return args.Get(0).(pipeline.Outcome)
}

func (m *MockPropertyService) ListProperties(ctx context.Context) ([]models.PropertyRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PropertyRow), args.Error(1)
}

func (m *MockPropertyService) RoomOptions(ctx context.Context) ([]models.RoomWithProperty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RoomWithProperty), args.Error(1)
}

type MockContractorService struct {
	mock.Mock
}

func (m *MockContractorService) CreateContractor(ctx context.Context, raw validation.Raw) pipeline.Outcome {
	args := m.Called(ctx, raw)
	return args.Get(0).(pipeline.Outcome)
}

func (m *MockContractorService) ListContractors(ctx context.Context) ([]models.Contractor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contractor), args.Error(1)
}

func (m *MockContractorService) ContractorOptions(ctx context.Context) ([]models.Contractor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contractor), args.Error(1)
}

type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) CreateContract(ctx context.Context, raw validation.Raw) pipeline.Outcome {
	args := m.Called(ctx, raw)
	return args.Get(0).(pipeline.Outcome)
}

func (m *MockContractService) ListContracts(ctx context.Context) ([]models.ContractWithRelations, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContractWithRelations), args.Error(1)
}

func (m *MockContractService) CurrentContracts(ctx context.Context) ([]models.ContractWithRelations, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContractWithRelations), args.Error(1)
}

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, raw validation.Raw) pipeline.Outcome {
	args := m.Called(ctx, raw)
	return args.Get(0).(pipeline.Outcome)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]models.TransactionWithContract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TransactionWithContract), args.Error(1)
}

type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) CreateInquiry(ctx context.Context, raw validation.Raw) pipeline.Outcome {
	args := m.Called(ctx, raw)
	return args.Get(0).(pipeline.Outcome)
}

func (m *MockInquiryService) ListInquiries(ctx context.Context) ([]models.InquiryWithContractor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InquiryWithContractor), args.Error(1)
}
