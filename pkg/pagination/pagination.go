package pagination

import (
	"strconv"

	"salesapi/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params holds validated pagination parameters
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Parse extracts page/limit from query parameters. Absent or non-numeric
// parameters fall back to the defaults; explicit non-positive values are
// rejected, never clamped.
func Parse(c *gin.Context) (Params, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil {
		limit = DefaultLimit
	}

	if page < 1 || limit < 1 {
		return Params{}, apperror.BadRequest("Page and limit must be positive integers.")
	}

	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, nil
}
