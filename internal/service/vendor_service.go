package service

import (
	"context"
	"fmt"

	"salesapi/internal/model"
	"salesapi/internal/repository"
	"salesapi/pkg/apperror"
	"salesapi/pkg/response"
)

type VendorService interface {
	// ListVendors returns vendors sorted by name ascending, page-sliced,
	// with pagination metadata computed from the full vendor count.
	ListVendors(ctx context.Context, page, limit int) ([]model.Vendor, response.VendorPagination, error)
}

type vendorService struct {
	vendorRepo repository.VendorRepository
}

func NewVendorService(vendorRepo repository.VendorRepository) VendorService {
	return &vendorService{vendorRepo: vendorRepo}
}

func (s *vendorService) ListVendors(ctx context.Context, page, limit int) ([]model.Vendor, response.VendorPagination, error) {
	vendors, total, err := s.vendorRepo.List(ctx, page, limit)
	if err != nil {
		return nil, response.VendorPagination{}, fmt.Errorf("failed to fetch vendors: %w", err)
	}

	if len(vendors) == 0 {
		return nil, response.VendorPagination{}, apperror.NotFound("There are no vendors in the database!")
	}

	return vendors, response.NewVendorPagination(page, limit, total, len(vendors)), nil
}
