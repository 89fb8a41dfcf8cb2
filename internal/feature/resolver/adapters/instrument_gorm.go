// Package adapters provides the repository and listing-source
// implementations for the resolver feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"finos_backend/internal/feature/resolver/domain/entity"
)

// instrumentGorm persists the exchange listing through gorm.
type instrumentGorm struct {
	db *gorm.DB
}

var _ InstrumentRepository = (*instrumentGorm)(nil)

// NewInstrumentRepository creates a gorm-backed instrument repository.
func NewInstrumentRepository(db *gorm.DB) *instrumentGorm {
	return &instrumentGorm{db: db}
}

// ReplaceAll swaps the persisted listing for the given rows in a single
// transaction, so a reader never observes a half-replaced listing.
func (r *instrumentGorm) ReplaceAll(ctx context.Context, instruments []entity.Instrument) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Instrument{}).Error; err != nil {
			return err
		}
		if len(instruments) == 0 {
			return nil
		}
		return tx.CreateInBatches(instruments, 500).Error
	})
}

// ListAll returns every persisted instrument ordered by symbol.
func (r *instrumentGorm) ListAll(ctx context.Context) ([]entity.Instrument, error) {
	var instruments []entity.Instrument
	if err := r.db.WithContext(ctx).
		Order("symbol ASC").
		Find(&instruments).Error; err != nil {
		return nil, err
	}
	return instruments, nil
}
