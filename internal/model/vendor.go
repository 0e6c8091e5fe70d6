package model

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is a seller owning zero or more parent products. Vendors are
// created and maintained by an external system; this API only reads them.
type Vendor struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
