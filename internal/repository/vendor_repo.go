package repository

import (
	"context"
	"errors"
	"fmt"

	"salesapi/internal/model"

	"gorm.io/gorm"
)

type VendorRepository interface {
	// FindByName resolves a vendor by exact name match. A nil vendor with
	// a nil error means no vendor carries that name.
	FindByName(ctx context.Context, name string) (*model.Vendor, error)
	List(ctx context.Context, page, limit int) ([]model.Vendor, int64, error)
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) FindByName(ctx context.Context, name string) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query vendor by name: %w", err)
	}
	return &vendor, nil
}

func (r *vendorRepository) List(ctx context.Context, page, limit int) ([]model.Vendor, int64, error) {
	var vendors []model.Vendor
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Vendor{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count vendors: %w", err)
	}

	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&vendors).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query vendors: %w", err)
	}

	return vendors, total, nil
}
