package repository

import (
	"context"
	"fmt"

	"salesapi/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository runs the sales aggregation queries over cart line items.
// Callers pass the product set of a single vendor; grouping, joining,
// sorting and page slicing happen in the database.
type OrderRepository interface {
	// ProductSales returns per-product sum groups for the given products,
	// sorted by total packs sold descending with total money earned as the
	// tie break. The join to parent_products is inner: groups whose product
	// row no longer exists are dropped.
	ProductSales(ctx context.Context, productIDs []uuid.UUID, offset, limit int) ([]model.ProductSalesRow, error)

	// ProductSalesCount returns the unpaginated group count for the same
	// aggregation, used for pagination metadata.
	ProductSalesCount(ctx context.Context, productIDs []uuid.UUID) (int64, error)

	// MonthlySales returns per-(year, month) quantity sums for the given
	// products, restricted to orders paid within the given calendar year.
	MonthlySales(ctx context.Context, productIDs []uuid.UUID, year int) ([]model.MonthlySalesRow, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) ProductSales(ctx context.Context, productIDs []uuid.UUID, offset, limit int) ([]model.ProductSalesRow, error) {
	var rows []model.ProductSalesRow
	if err := r.db.WithContext(ctx).Table("cart_items").
		Select("parent_products.name as product_name, SUM(cart_items.item_count) as total_items_sold, SUM(cart_items.quantity) as total_packs_sold, SUM(cart_items.cogs) as total_cogs, SUM(cart_items.price) as total_money_earned").
		Joins("JOIN parent_products ON parent_products.id = cart_items.product_id").
		Where("cart_items.product_id IN ?", productIDs).
		Group("cart_items.product_id, parent_products.name").
		Order("total_packs_sold DESC, total_money_earned DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query product sales: %w", err)
	}
	return rows, nil
}

func (r *orderRepository) ProductSalesCount(ctx context.Context, productIDs []uuid.UUID) (int64, error) {
	groups := r.db.Table("cart_items").
		Select("cart_items.product_id").
		Joins("JOIN parent_products ON parent_products.id = cart_items.product_id").
		Where("cart_items.product_id IN ?", productIDs).
		Group("cart_items.product_id")

	var total int64
	if err := r.db.WithContext(ctx).Table("(?) as product_groups", groups).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count product sales groups: %w", err)
	}
	return total, nil
}

func (r *orderRepository) MonthlySales(ctx context.Context, productIDs []uuid.UUID, year int) ([]model.MonthlySalesRow, error) {
	var rows []model.MonthlySalesRow
	if err := r.db.WithContext(ctx).Table("cart_items").
		Select("CAST(EXTRACT(YEAR FROM orders.payment_at) AS INTEGER) as year, CAST(EXTRACT(MONTH FROM orders.payment_at) AS INTEGER) as month, SUM(cart_items.quantity) as total_quantity_sold").
		Joins("JOIN orders ON orders.id = cart_items.order_id").
		Where("cart_items.product_id IN ? AND EXTRACT(YEAR FROM orders.payment_at) = ?", productIDs, year).
		Group("EXTRACT(YEAR FROM orders.payment_at), EXTRACT(MONTH FROM orders.payment_at)").
		Order("month ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query monthly sales: %w", err)
	}
	return rows, nil
}
