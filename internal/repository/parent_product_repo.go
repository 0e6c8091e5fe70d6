package repository

import (
	"context"
	"fmt"

	"salesapi/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParentProductRepository interface {
	FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]model.ParentProduct, error)
}

type parentProductRepository struct {
	db *gorm.DB
}

func NewParentProductRepository(db *gorm.DB) ParentProductRepository {
	return &parentProductRepository{db: db}
}

func (r *parentProductRepository) FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]model.ParentProduct, error) {
	var products []model.ParentProduct
	if err := r.db.WithContext(ctx).
		Find(&products, "vendor_id = ?", vendorID).Error; err != nil {
		return nil, fmt.Errorf("failed to query products by vendor: %w", err)
	}
	return products, nil
}
