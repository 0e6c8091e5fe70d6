package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a completed purchase containing one or more cart line items,
// timestamped by payment time. An order may span products of multiple
// vendors.
type Order struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PaymentAt time.Time  `gorm:"not null;index" json:"payment_at"`
	CartItems []CartItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"cart_items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one line item within an order, referencing a parent product
// and carrying quantity/cost/price/margin measures.
type CartItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	VariantID    uuid.UUID       `gorm:"type:uuid;not null" json:"variant_id"`
	Series       string          `gorm:"type:varchar(100);not null" json:"series"`
	ItemCount    int             `gorm:"not null" json:"item_count"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Cogs         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"cogs"`
	Price        decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"`
	VendorMargin decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"vendor_margin"`
	OrderStatus  string          `gorm:"type:varchar(30);not null" json:"order_status"`
}
