package service

import (
	"context"
	"fmt"

	"salesapi/internal/repository"
	"salesapi/pkg/apperror"
	"salesapi/pkg/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSalesSummary is one aggregated row of the product sales report.
// All four metrics are rounded to 2 decimal places.
type ProductSalesSummary struct {
	ProductName      string  `json:"productName"`
	TotalItemsSold   float64 `json:"totalItemsSold"`
	TotalPacksSold   float64 `json:"totalPacksSold"`
	TotalCogs        float64 `json:"totalCogs"`
	TotalMoneyEarned float64 `json:"totalMoneyEarned"`
}

// MonthlySellingRate is one slot of the fixed 12-month series.
type MonthlySellingRate struct {
	Month             string `json:"month"`
	TotalQuantitySold int    `json:"totalQuantitySold"`
}

type SalesService interface {
	ProductSalesByVendor(ctx context.Context, vendorName string, page, limit int) ([]ProductSalesSummary, response.Pagination, error)
	MonthlySellingRates(ctx context.Context, vendorName string, year int) ([]MonthlySellingRate, error)
}

type salesService struct {
	vendorRepo  repository.VendorRepository
	productRepo repository.ParentProductRepository
	orderRepo   repository.OrderRepository
}

func NewSalesService(vendorRepo repository.VendorRepository, productRepo repository.ParentProductRepository, orderRepo repository.OrderRepository) SalesService {
	return &salesService{
		vendorRepo:  vendorRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// ProductSalesByVendor groups the vendor's sold cart items per product and
// returns one page of summed metrics. The pre-pagination group count feeds
// the metadata, so totalRecords is stable across pages.
func (s *salesService) ProductSalesByVendor(ctx context.Context, vendorName string, page, limit int) ([]ProductSalesSummary, response.Pagination, error) {
	if vendorName == "" {
		return nil, response.Pagination{}, apperror.NotFound("Missing parameter field(s): vendorName.")
	}

	productIDs, err := s.resolveVendorProducts(ctx, vendorName)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	total, err := s.orderRepo.ProductSalesCount(ctx, productIDs)
	if err != nil {
		return nil, response.Pagination{}, fmt.Errorf("failed to count product sales: %w", err)
	}
	if total == 0 {
		return nil, response.Pagination{}, apperror.NotFound(fmt.Sprintf("No orders found for vendor %s!", vendorName))
	}

	rows, err := s.orderRepo.ProductSales(ctx, productIDs, (page-1)*limit, limit)
	if err != nil {
		return nil, response.Pagination{}, fmt.Errorf("failed to fetch product sales: %w", err)
	}

	summaries := make([]ProductSalesSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, ProductSalesSummary{
			ProductName:      row.ProductName,
			TotalItemsSold:   round2(row.TotalItemsSold),
			TotalPacksSold:   round2(row.TotalPacksSold),
			TotalCogs:        round2(row.TotalCogs),
			TotalMoneyEarned: round2(row.TotalMoneyEarned),
		})
	}

	return summaries, response.NewPagination(page, limit, total, len(summaries)), nil
}

// MonthlySellingRates sums the vendor's sold quantities per month of the
// given year and densifies the result into a fixed January-to-December
// series: months without sales carry an explicit zero.
func (s *salesService) MonthlySellingRates(ctx context.Context, vendorName string, year int) ([]MonthlySellingRate, error) {
	if vendorName == "" {
		return nil, apperror.NotFound("Missing parameter field(s): vendorName.")
	}

	productIDs, err := s.resolveVendorProducts(ctx, vendorName)
	if err != nil {
		return nil, err
	}

	rows, err := s.orderRepo.MonthlySales(ctx, productIDs, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monthly sales: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NotFound(fmt.Sprintf("There are no sales for vendor %s in year %d.", vendorName, year))
	}

	rates := make([]MonthlySellingRate, len(monthAbbreviations))
	for i, month := range monthAbbreviations {
		rates[i] = MonthlySellingRate{Month: month}
	}
	for _, row := range rows {
		if row.Month >= 1 && row.Month <= len(rates) {
			rates[row.Month-1].TotalQuantitySold = row.TotalQuantitySold
		}
	}

	return rates, nil
}

// resolveVendorProducts maps a vendor name to its product ID set, failing
// with NotFound when the vendor is absent or owns no products.
func (s *salesService) resolveVendorProducts(ctx context.Context, vendorName string) ([]uuid.UUID, error) {
	vendor, err := s.vendorRepo.FindByName(ctx, vendorName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vendor: %w", err)
	}
	if vendor == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Vendor with name %s not found!", vendorName))
	}

	products, err := s.productRepo.FindByVendorID(ctx, vendor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vendor products: %w", err)
	}
	if len(products) == 0 {
		return nil, apperror.NotFound(fmt.Sprintf("No products found for vendor %s!", vendorName))
	}

	productIDs := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
	}
	return productIDs, nil
}

var monthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// round2 rounds a summed metric to 2 decimal places, half away from zero.
func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
