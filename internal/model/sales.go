package model

import "github.com/shopspring/decimal"

// ProductSalesRow is one per-product group produced by the sales
// aggregation query. Sums are raw (unrounded); the service layer applies
// the 2-decimal rounding rule.
type ProductSalesRow struct {
	ProductName      string          `gorm:"column:product_name"`
	TotalItemsSold   decimal.Decimal `gorm:"column:total_items_sold"`
	TotalPacksSold   decimal.Decimal `gorm:"column:total_packs_sold"`
	TotalCogs        decimal.Decimal `gorm:"column:total_cogs"`
	TotalMoneyEarned decimal.Decimal `gorm:"column:total_money_earned"`
}

// MonthlySalesRow is one (year, month) group of summed quantities from
// the monthly selling-rate query. Month is 1-based (1 = January).
type MonthlySalesRow struct {
	Year              int `gorm:"column:year"`
	Month             int `gorm:"column:month"`
	TotalQuantitySold int `gorm:"column:total_quantity_sold"`
}
