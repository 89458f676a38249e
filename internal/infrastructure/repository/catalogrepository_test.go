package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scalehouse/internal/domain/catalog"
	sharederrors "scalehouse/internal/shared/errors"
)

func TestTruckRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTruckRepository(db)
	ctx := context.Background()

	truck := &catalog.Truck{TruckNumber: "T-12", HauledBy: "McCracken", Active: true}
	require.NoError(t, repo.Create(ctx, truck))
	assert.NotZero(t, truck.ID)

	t.Run("duplicate truck number rejected", func(t *testing.T) {
		err := repo.Create(ctx, &catalog.Truck{TruckNumber: "T-12", Active: true})
		require.Error(t, err)
		appErr := sharederrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, sharederrors.ErrorTypeDuplicateKey, appErr.Type)
	})

	t.Run("toggle flips active", func(t *testing.T) {
		toggled, err := repo.ToggleActive(ctx, truck.ID)
		require.NoError(t, err)
		assert.False(t, toggled.Active)

		toggled, err = repo.ToggleActive(ctx, truck.ID)
		require.NoError(t, err)
		assert.True(t, toggled.Active)
	})

	t.Run("list excludes inactive by default", func(t *testing.T) {
		inactive := &catalog.Truck{TruckNumber: "T-99", Active: true}
		require.NoError(t, repo.Create(ctx, inactive))
		_, err := repo.ToggleActive(ctx, inactive.ID)
		require.NoError(t, err)

		active, err := repo.List(ctx, false)
		require.NoError(t, err)
		assert.Len(t, active, 1)

		all, err := repo.List(ctx, true)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("toggle unknown id is not found", func(t *testing.T) {
		_, err := repo.ToggleActive(ctx, 9999)
		assert.True(t, sharederrors.IsNotFoundError(err))
	})
}

func TestMaterialRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaterialRepository(db)
	ctx := context.Background()

	material := &catalog.Material{MaterialName: "Crushed Limestone", Active: true}
	require.NoError(t, repo.Create(ctx, material))

	found, err := repo.FindByName(ctx, "Crushed Limestone")
	require.NoError(t, err)
	assert.Equal(t, material.ID, found.ID)

	toggled, err := repo.ToggleActive(ctx, material.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)
}

func TestCustomerRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &catalog.Customer{Name: "City of Garfield Heights"}))
	require.NoError(t, repo.Create(ctx, &catalog.Customer{Name: "Acme Paving"}))

	customers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Acme Paving", customers[0].Name)
}
