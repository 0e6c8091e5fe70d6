package handler

import (
	"context"

	"salesapi/internal/middleware"
	"salesapi/internal/model"
	"salesapi/internal/service"
	"salesapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type fakeVendorService struct {
	listFn func(ctx context.Context, page, limit int) ([]model.Vendor, response.VendorPagination, error)
	calls  int
}

func (f *fakeVendorService) ListVendors(ctx context.Context, page, limit int) ([]model.Vendor, response.VendorPagination, error) {
	f.calls++
	return f.listFn(ctx, page, limit)
}

type fakeSalesService struct {
	productSalesFn func(ctx context.Context, vendorName string, page, limit int) ([]service.ProductSalesSummary, response.Pagination, error)
	monthlyFn      func(ctx context.Context, vendorName string, year int) ([]service.MonthlySellingRate, error)
	calls          int
}

func (f *fakeSalesService) ProductSalesByVendor(ctx context.Context, vendorName string, page, limit int) ([]service.ProductSalesSummary, response.Pagination, error) {
	f.calls++
	return f.productSalesFn(ctx, vendorName, page, limit)
}

func (f *fakeSalesService) MonthlySellingRates(ctx context.Context, vendorName string, year int) ([]service.MonthlySellingRate, error) {
	f.calls++
	return f.monthlyFn(ctx, vendorName, year)
}

// newTestRouter wires handlers behind the error middleware the way main does.
func newTestRouter(vendorHandler *VendorHandler, orderHandler *OrderHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler(nil))
	if vendorHandler != nil {
		vendorHandler.RegisterRoutes(router.Group(""))
	}
	if orderHandler != nil {
		orderHandler.RegisterRoutes(router.Group(""))
	}
	return router
}
