package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/KeisukeTTTT/estate-management/internal/db"
	"github.com/KeisukeTTTT/estate-management/internal/models"
)

// --- Mocks ---

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Insert(ctx context.Context, kind models.Kind, entity models.IBase) error {
	args := m.Called(ctx, kind, entity)
	return args.Error(0)
}

func (m *MockStore) Exists(ctx context.Context, kind models.Kind, id string) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) FindMany(ctx context.Context, kind models.Kind, q db.Query, out any) error {
	args := m.Called(ctx, kind, q, out)
	return args.Error(0)
}

type MockListingCache struct {
	mock.Mock
}

func (m *MockListingCache) Get(ctx context.Context, key string, out any) (bool, error) {
	args := m.Called(ctx, key, out)
	return args.Bool(0), args.Error(1)
}

func (m *MockListingCache) Set(ctx context.Context, key string, v any) error {
	args := m.Called(ctx, key, v)
	return args.Error(0)
}

func (m *MockListingCache) Invalidate(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
