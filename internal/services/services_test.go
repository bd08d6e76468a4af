package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/KeisukeTTTT/estate-management/internal/models"
	"github.com/KeisukeTTTT/estate-management/internal/pipeline"
	"github.com/KeisukeTTTT/estate-management/internal/validation"
)

func newRunner(store *MockStore, listings *MockListingCache) *pipeline.Runner {
	return pipeline.NewRunner(store, store, listings, zap.NewNop(), time.Second)
}

// Scenario: a ticked corporation checkbox persists as true and the caller gets success in place.
func TestCreateContractor_Commits(t *testing.T) {
	store, listings := new(MockStore), new(MockListingCache)
	var saved *models.Contractor
	store.On("Insert", mock.Anything, models.KindContractor, mock.AnythingOfType("*models.Contractor")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(*models.Contractor) }).
		Return(nil)
	listings.On("Invalidate", mock.Anything, "/dashboard/contractors").Return(nil)

	svc := NewContractorService(store, newRunner(store, listings), listings, zap.NewNop())
	out := svc.CreateContractor(context.Background(), validation.FromMap(map[string]string{
		"name": "Acme", "contact": "a@x.com", "address": "Tokyo", "isCorporation": "on",
	}))

	assert.Equal(t, pipeline.StateCommitted, out.State)
	assert.Empty(t, out.RedirectTo)
	assert.Equal(t, pipeline.Result{Success: true, Message: "Contractor created successfully."}, out.Result)
	require.NotNil(t, saved)
	assert.True(t, saved.IsCorporation)
	listings.AssertExpectations(t)
}

// Scenario: a blank contractorId persists as no reference and the status is forced to RECEIVED.
func TestCreateInquiry_BlankContractor(t *testing.T) {
	store, listings := new(MockStore), new(MockListingCache)
	var saved *models.Inquiry
	store.On("Insert", mock.Anything, models.KindInquiry, mock.AnythingOfType("*models.Inquiry")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(*models.Inquiry) }).
		Return(nil)
	listings.On("Invalidate", mock.Anything, "/dashboard/inquiries").Return(nil)

	svc := NewInquiryService(store, newRunner(store, listings), listings, zap.NewNop())
	out := svc.CreateInquiry(context.Background(), validation.FromMap(map[string]string{
		"contactName": "Tanaka", "contactInfo": "t@x.com", "subject": "Leak",
		"details": "Water in the bathroom", "contractorId": "", "status": "CLOSED",
	}))

	assert.Equal(t, pipeline.StateCommitted, out.State)
	assert.Equal(t, "/dashboard/inquiries", out.RedirectTo)
	require.NotNil(t, saved)
	assert.Nil(t, saved.ContractorID)
	assert.Equal(t, models.InquiryStatusReceived, saved.Status)
	store.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateContract_UnknownRoom(t *testing.T) {
	store, listings := new(MockStore), new(MockListingCache)
	store.On("Exists", mock.Anything, models.KindContractor, "c-1").Return(true, nil)
	store.On("Exists", mock.Anything, models.KindRoom, "nope").Return(false, nil)

	svc := NewContractService(store, newRunner(store, listings), listings, zap.NewNop())
	out := svc.CreateContract(context.Background(), validation.FromMap(map[string]string{
		"contractorId": "c-1", "roomId": "nope", "startDate": "2024-01-01", "endDate": "2025-01-01",
		"rent": "1000", "managementFee": "500",
	}))

	assert.Equal(t, pipeline.StateRejected, out.State)
	assert.Equal(t, []string{"roomId"}, out.Result.Errors.Fields())
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateContract_PersistsTypedValues(t *testing.T) {
	store, listings := new(MockStore), new(MockListingCache)
	store.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	var saved *models.Contract
	store.On("Insert", mock.Anything, models.KindContract, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).(*models.Contract) }).
		Return(nil)
	listings.On("Invalidate", mock.Anything, "/dashboard/contracts").Return(nil)

	svc := NewContractService(store, newRunner(store, listings), listings, zap.NewNop())
	out := svc.CreateContract(context.Background(), validation.FromMap(map[string]string{
		"contractorId": "c-1", "roomId": "r-1", "startDate": "2024-04-01", "endDate": "2026-03-31",
		"rent": "85000", "managementFee": "5000", "deposit": "170000", "keyMoney": "",
	}))

	require.Equal(t, pipeline.StateCommitted, out.State)
	assert.Equal(t, "/dashboard/contracts", out.RedirectTo)
	assert.Equal(t, models.ContractStatusActive, saved.Status)
	require.NotNil(t, saved.Deposit)
	assert.Equal(t, int64(170000), *saved.Deposit)
	assert.Nil(t, saved.KeyMoney)
}

func TestCreateTransaction_LinksContract(t *testing.T) {
	store, listings := new(MockStore), new(MockListingCache)
	store.On("Exists", mock.Anything, models.KindContract, "k-1").Return(true, nil)
	var saved *models.Transaction
	store.On("Insert", mock.Anything, models.KindTransaction, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).(*models.Transaction) }).
		Return(nil)
	listings.On("Invalidate", mock.Anything, "/dashboard/transactions").Return(nil)

	svc := NewTransactionService(store, newRunner(store, listings), listings, zap.NewNop())
	out := svc.CreateTransaction(context.Background(), validation.FromMap(map[string]string{
		"transactionDate": "2024-05-01", "type": "REPAIR_EXPENSE", "amount": "-30000",
		"description": "Water heater", "contractId": "k-1",
	}))

	require.Equal(t, pipeline.StateCommitted, out.State)
	assert.Equal(t, "k-1", *saved.ContractID)
	assert.False(t, saved.IsIncome())
}

func TestCreateProperty_StorageFailure(t *testing.T) {
	store, listings := new(MockStore), new(MockListingCache)
	store.On("Insert", mock.Anything, models.KindProperty, mock.Anything).Return(errors.New("no reachable servers"))

	svc := NewPropertyService(store, newRunner(store, listings), listings, zap.NewNop())
	out := svc.CreateProperty(context.Background(), validation.FromMap(map[string]string{
		"name": "Sunrise", "address": "Tokyo", "type": "MANSION",
	}))

	assert.Equal(t, pipeline.StateFailed, out.State)
	assert.Equal(t, pipeline.MessageFailed, out.Result.Message)
	listings.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestListContracts_CacheMissReadsStoreAndFills(t *testing.T) {
	store, listings := new(MockStore), new(MockListingCache)
	listings.On("Get", mock.Anything, "listing:/dashboard/contracts", mock.Anything).Return(false, nil)
	store.On("FindMany", mock.Anything, models.KindContract, contractListQuery(), mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]models.ContractWithRelations)
			*out = []models.ContractWithRelations{{Contract: models.Contract{Status: models.ContractStatusExpired}}}
		}).
		Return(nil)
	listings.On("Set", mock.Anything, "listing:/dashboard/contracts", mock.Anything).Return(nil)

	svc := NewContractService(store, nil, listings, zap.NewNop())
	rows, err := svc.ListContracts(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Expired", rows[0].StatusLabel)
	assert.Equal(t, models.ToneError, rows[0].StatusTone)
	listings.AssertExpectations(t)
}

func TestListProperties_CacheHitSkipsStore(t *testing.T) {
	store, listings := new(MockStore), new(MockListingCache)
	listings.On("Get", mock.Anything, "listing:/dashboard/properties", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*[]models.PropertyRow)
			*out = []models.PropertyRow{{Property: models.Property{Name: "Sunrise"}, TypeLabel: "Mansion"}}
		}).
		Return(true, nil)

	svc := NewPropertyService(store, nil, listings, zap.NewNop())
	rows, err := svc.ListProperties(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Sunrise", rows[0].Name)
	store.AssertNotCalled(t, "FindMany", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListInquiries_CacheErrorFallsBackToStore(t *testing.T) {
	store, listings := new(MockStore), new(MockListingCache)
	listings.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
	listings.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
	store.On("FindMany", mock.Anything, models.KindInquiry, mock.Anything, mock.Anything).Return(nil)

	svc := NewInquiryService(store, nil, listings, zap.NewNop())
	rows, err := svc.ListInquiries(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestListTransactions_StoreError(t *testing.T) {
	store := new(MockStore)
	store.On("FindMany", mock.Anything, models.KindTransaction, mock.Anything, mock.Anything).Return(errors.New("boom"))

	svc := NewTransactionService(store, nil, nil, zap.NewNop())
	_, err := svc.ListTransactions(context.Background())
	assert.Error(t, err)
}

func TestCurrentContractQuery_FiltersCurrentStatuses(t *testing.T) {
	q := currentContractQuery()
	assert.ElementsMatch(t, []string{"ACTIVE", "UPCOMING", "RENEWAL"}, q.Filter["status"].(bson.M)["$in"])
}
