package model

import (
	"time"

	"github.com/google/uuid"
)

// ParentProduct is a sellable product belonging to exactly one vendor.
type ParentProduct struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Vendor    *Vendor   `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
