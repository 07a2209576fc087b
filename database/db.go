package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stockroom/inventory-service/config"
	"github.com/stockroom/inventory-service/models"
)

// Connect opens the store connection and keeps the schema in sync.
// TranslateError turns driver unique/foreign-key violations into
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated, which the
// repositories map onto the domain error taxonomy.
func Connect(cfg config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to store: %w", err)
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
