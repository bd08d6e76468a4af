package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/KeisukeTTTT/estate-management/internal/models"
)

// --- Mocks ---

type MockInserter struct {
	mock.Mock
}

func (m *MockInserter) Insert(ctx context.Context, kind models.Kind, entity models.IBase) error {
	args := m.Called(ctx, kind, entity)
	return args.Error(0)
}

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Exists(ctx context.Context, kind models.Kind, id string) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
