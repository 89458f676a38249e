package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scalehouse/internal/infrastructure/persistence/models"
)

// SequenceRepository allocates gapless-per-allocation ticket numbers from
// a per-year counter row. All three steps run inside one transaction so
// the increment and read-back observe the same row version; the database
// serializes concurrent writers.
type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(database *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: database}
}

func (r *SequenceRepository) Next(ctx context.Context, year int) (int, error) {
	if year <= 0 {
		return 0, fmt.Errorf("year must be positive, got %d", year)
	}

	var next int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Seed the counter row on first use of a year. DoNothing keeps
		// a concurrent seeder from failing the transaction.
		seed := models.SequenceModel{TicketYear: year, LastValue: 0}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return fmt.Errorf("failed to seed sequence for year %d: %w", year, err)
		}

		err := tx.Model(&models.SequenceModel{}).
			Where("ticket_year = ?", year).
			UpdateColumn("last_value", gorm.Expr("last_value + 1")).Error
		if err != nil {
			return fmt.Errorf("failed to advance sequence for year %d: %w", year, err)
		}

		var row models.SequenceModel
		if err := tx.Where("ticket_year = ?", year).First(&row).Error; err != nil {
			return fmt.Errorf("failed to read sequence for year %d: %w", year, err)
		}
		next = row.LastValue
		return nil
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}
