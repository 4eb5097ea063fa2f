package migration

import (
	"fmt"

	"gorm.io/gorm"

	"gearshop/internal/infrastructure/persistence/models"
	"gearshop/internal/shared/logger"
)

// AutoMigrateModels returns every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CustomerModel{},
		&models.MechanicModel{},
		&models.InventoryModel{},
		&models.TicketModel{},
		&models.TicketMechanicModel{},
		&models.TicketInventoryModel{},
	}
}

// GormAutoMigrateStrategy implements migration using GORM AutoMigrate.
// Intended for development only; SQL scripts own the schema elsewhere.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, modelList ...interface{}) error {
	if len(modelList) == 0 {
		modelList = AutoMigrateModels()
	}

	if err := db.AutoMigrate(modelList...); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	s.logger.Infow("auto-migrate completed", "models", len(modelList))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}
