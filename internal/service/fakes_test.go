package service

import (
	"context"
	"sort"
	"time"

	"salesapi/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory repository fakes implementing the same contracts as the
// gorm-backed repositories, including the aggregation semantics of the
// sales queries (group, inner join, sort, page slice).

type fakeVendorRepo struct {
	vendors []model.Vendor
}

func (f *fakeVendorRepo) FindByName(_ context.Context, name string) (*model.Vendor, error) {
	for i := range f.vendors {
		if f.vendors[i].Name == name {
			return &f.vendors[i], nil
		}
	}
	return nil, nil
}

func (f *fakeVendorRepo) List(_ context.Context, page, limit int) ([]model.Vendor, int64, error) {
	sorted := make([]model.Vendor, len(f.vendors))
	copy(sorted, f.vendors)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	total := int64(len(sorted))
	offset := (page - 1) * limit
	if offset >= len(sorted) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], total, nil
}

type fakeProductRepo struct {
	byVendor map[uuid.UUID][]model.ParentProduct
}

func (f *fakeProductRepo) FindByVendorID(_ context.Context, vendorID uuid.UUID) ([]model.ParentProduct, error) {
	return f.byVendor[vendorID], nil
}

// saleItem is one flattened cart line item held by the fake order repo.
type saleItem struct {
	productID uuid.UUID
	itemCount int
	quantity  int
	cogs      float64
	price     float64
	paidAt    time.Time
}

type fakeOrderRepo struct {
	// productNames is the join target; items referencing a product absent
	// here are dropped, mirroring the inner join of the real query.
	productNames map[uuid.UUID]string
	items        []saleItem
}

func (f *fakeOrderRepo) groups(productIDs []uuid.UUID) []model.ProductSalesRow {
	inSet := make(map[uuid.UUID]bool, len(productIDs))
	for _, id := range productIDs {
		inSet[id] = true
	}

	byProduct := make(map[uuid.UUID]*model.ProductSalesRow)
	var seen []uuid.UUID
	for _, item := range f.items {
		if !inSet[item.productID] {
			continue
		}
		name, ok := f.productNames[item.productID]
		if !ok {
			continue
		}
		row := byProduct[item.productID]
		if row == nil {
			row = &model.ProductSalesRow{ProductName: name}
			byProduct[item.productID] = row
			seen = append(seen, item.productID)
		}
		row.TotalItemsSold = row.TotalItemsSold.Add(decimal.NewFromInt(int64(item.itemCount)))
		row.TotalPacksSold = row.TotalPacksSold.Add(decimal.NewFromInt(int64(item.quantity)))
		row.TotalCogs = row.TotalCogs.Add(decimal.NewFromFloat(item.cogs))
		row.TotalMoneyEarned = row.TotalMoneyEarned.Add(decimal.NewFromFloat(item.price))
	}

	rows := make([]model.ProductSalesRow, 0, len(seen))
	for _, id := range seen {
		rows = append(rows, *byProduct[id])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].TotalPacksSold.Cmp(rows[j].TotalPacksSold); c != 0 {
			return c > 0
		}
		return rows[i].TotalMoneyEarned.Cmp(rows[j].TotalMoneyEarned) > 0
	})
	return rows
}

func (f *fakeOrderRepo) ProductSales(_ context.Context, productIDs []uuid.UUID, offset, limit int) ([]model.ProductSalesRow, error) {
	rows := f.groups(productIDs)
	if offset >= len(rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

func (f *fakeOrderRepo) ProductSalesCount(_ context.Context, productIDs []uuid.UUID) (int64, error) {
	return int64(len(f.groups(productIDs))), nil
}

func (f *fakeOrderRepo) MonthlySales(_ context.Context, productIDs []uuid.UUID, year int) ([]model.MonthlySalesRow, error) {
	inSet := make(map[uuid.UUID]bool, len(productIDs))
	for _, id := range productIDs {
		inSet[id] = true
	}

	sums := make(map[int]int)
	for _, item := range f.items {
		if !inSet[item.productID] || item.paidAt.Year() != year {
			continue
		}
		sums[int(item.paidAt.Month())] += item.quantity
	}

	var rows []model.MonthlySalesRow
	for month := 1; month <= 12; month++ {
		if quantity, ok := sums[month]; ok {
			rows = append(rows, model.MonthlySalesRow{Year: year, Month: month, TotalQuantitySold: quantity})
		}
	}
	return rows, nil
}
