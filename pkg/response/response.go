package response

import "math"

// Pagination is the metadata block attached to paginated sales results.
// TotalRecords always reflects the unpaginated group count.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	PageSize     int   `json:"pageSize"`
}

// VendorPagination is the metadata block attached to the vendor listing.
type VendorPagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalVendors int64 `json:"totalVendors"`
	PageSize     int   `json:"pageSize"`
}

// ErrorBody is the uniform error payload written by the error middleware.
type ErrorBody struct {
	Message string `json:"message"`
}

// NewPagination builds sales pagination metadata for the given page.
func NewPagination(page, limit int, totalRecords int64, pageSize int) Pagination {
	return Pagination{
		CurrentPage:  page,
		TotalPages:   TotalPages(totalRecords, limit),
		TotalRecords: totalRecords,
		PageSize:     pageSize,
	}
}

// NewVendorPagination builds vendor listing pagination metadata.
func NewVendorPagination(page, limit int, totalVendors int64, pageSize int) VendorPagination {
	return VendorPagination{
		CurrentPage:  page,
		TotalPages:   TotalPages(totalVendors, limit),
		TotalVendors: totalVendors,
		PageSize:     pageSize,
	}
}

// TotalPages returns ceil(total/limit).
func TotalPages(total int64, limit int) int {
	return int(math.Ceil(float64(total) / float64(limit)))
}
