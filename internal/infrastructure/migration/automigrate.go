package migration

import (
	"fmt"

	"gorm.io/gorm"

	"scalehouse/internal/infrastructure/persistence/models"
	"scalehouse/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
		&models.SequenceModel{},
		&models.JobCacheModel{},
		&models.TruckModel{},
		&models.MaterialModel{},
		&models.MaterialPriceModel{},
		&models.CustomerModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the model structs.
// Used in development; versioned scripts run everywhere else.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	s.logger.Infow("auto migration completed", "models", len(models))
	return nil
}
