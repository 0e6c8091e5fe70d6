package handler

import (
	"net/http"

	"salesapi/internal/service"
	"salesapi/pkg/pagination"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VendorHandler struct {
	vendorService service.VendorService
	logger        *zap.Logger
}

func NewVendorHandler(vendorService service.VendorService, logger *zap.Logger) *VendorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VendorHandler{vendorService: vendorService, logger: logger}
}

func (h *VendorHandler) RegisterRoutes(router *gin.RouterGroup) {
	vendors := router.Group("/vendors")
	{
		vendors.GET("", h.ListVendors)
	}
}

// ListVendors returns vendors sorted by name, page-sliced
// @Summary      List vendors
// @Tags         vendors
// @Produce      json
// @Param        page   query  int  false  "Page number (default: 1)"
// @Param        limit  query  int  false  "Items per page (default: 10)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /vendors [get]
func (h *VendorHandler) ListVendors(c *gin.Context) {
	params, err := pagination.Parse(c)
	if err != nil {
		c.Error(err)
		return
	}

	vendors, meta, err := h.vendorService.ListVendors(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.Error(err)
		return
	}

	h.logger.Info("Vendors are successfully returned.")
	c.JSON(http.StatusOK, gin.H{
		"vendors":    vendors,
		"pagination": meta,
	})
}
