package seed

import (
	"context"
	"fmt"

	"go-product-catalog/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Products inserts the sample catalog if and only if the products table is
// empty. All inserts run in one transaction; on any failure the whole batch
// rolls back. A non-zero row count skips seeding entirely, with no check that
// the existing rows resemble the sample set.
func Products(ctx context.Context, db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&entity.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if count > 0 {
		log.Infof("Products table already has %d rows, skipping seed", count)
		return nil
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	for i := range sampleProducts {
		// Insert a copy so gorm does not write generated ids back into
		// the package-level fixture.
		product := sampleProducts[i]
		if err := tx.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to seed product %q: %w", *product.Name, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	log.Infof("Seeded %d sample products", len(sampleProducts))
	return nil
}
