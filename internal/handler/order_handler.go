package handler

import (
	"net/http"
	"strconv"

	"salesapi/internal/service"
	"salesapi/pkg/apperror"
	"salesapi/pkg/pagination"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	salesService service.SalesService
	logger       *zap.Logger
}

func NewOrderHandler(salesService service.SalesService, logger *zap.Logger) *OrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderHandler{salesService: salesService, logger: logger}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.GET("/:vendorName", h.GetProductSales)
		orders.GET("/monthly/:vendorName/:year", h.GetMonthlySellingRates)
	}
}

// GetProductSales returns per-product sales totals for a vendor
// @Summary      Product sales summary by vendor
// @Tags         orders
// @Produce      json
// @Param        vendorName  path   string  true   "Vendor name"
// @Param        page        query  int     false  "Page number (default: 1)"
// @Param        limit       query  int     false  "Items per page (default: 10)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /orders/{vendorName} [get]
func (h *OrderHandler) GetProductSales(c *gin.Context) {
	vendorName := c.Param("vendorName")

	params, err := pagination.Parse(c)
	if err != nil {
		c.Error(err)
		return
	}

	orders, meta, err := h.salesService.ProductSalesByVendor(c.Request.Context(), vendorName, params.Page, params.Limit)
	if err != nil {
		c.Error(err)
		return
	}

	h.logger.Info("Information of sold products by vendor calculated successfully.",
		zap.String("vendor", vendorName))
	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": meta,
	})
}

// GetMonthlySellingRates returns a fixed Jan-Dec quantity series for a vendor
// @Summary      Monthly selling rates by vendor and year
// @Tags         orders
// @Produce      json
// @Param        vendorName  path  string  true  "Vendor name"
// @Param        year        path  int     true  "Calendar year"
// @Success      200  {array}   service.MonthlySellingRate
// @Failure      404  {object}  response.ErrorBody
// @Router       /orders/monthly/{vendorName}/{year} [get]
func (h *OrderHandler) GetMonthlySellingRates(c *gin.Context) {
	vendorName := c.Param("vendorName")

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.Error(apperror.NotFound("Missing parameter field(s): year."))
		return
	}

	rates, err := h.salesService.MonthlySellingRates(c.Request.Context(), vendorName, year)
	if err != nil {
		c.Error(err)
		return
	}

	h.logger.Info("Monthly selling rates calculated successfully.",
		zap.String("vendor", vendorName),
		zap.Int("year", year))
	c.JSON(http.StatusOK, rates)
}
