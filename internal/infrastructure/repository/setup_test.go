package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"scalehouse/internal/domain/ticket"
	vo "scalehouse/internal/domain/ticket/valueobjects"
	"scalehouse/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database shared across the
	// test and serializes concurrent writers.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.TicketModel{},
		&models.SequenceModel{},
		&models.JobCacheModel{},
		&models.TruckModel{},
		&models.MaterialModel{},
		&models.MaterialPriceModel{},
		&models.CustomerModel{},
	)
	require.NoError(t, err)

	return db
}

func newTestTicket(t *testing.T, direction vo.Direction, createdAt time.Time, year, sequence int) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket(direction, createdAt, ticket.Snapshot{
		JobCode:      "1001",
		JobName:      "Main St Resurfacing",
		Customer:     "City of Garfield Heights",
		TruckNumber:  "T-12",
		MaterialName: "Crushed Limestone",
	}, 12.5, "tons", "")
	require.NoError(t, err)
	require.NoError(t, tk.SetNumber(year, sequence))
	require.NoError(t, tk.SetDocument(
		ticket.FormatNumber(year, sequence)+".pdf", []byte("%PDF-1.4 test")))
	return tk
}
