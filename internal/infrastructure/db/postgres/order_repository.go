package postgres

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository persists orders in PostgreSQL.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// PlaceOrder runs the whole order-placement flow in one transaction:
// load the cart, lock and validate product stock, resolve the shipping
// address, write the order with item snapshots, decrement stock, and
// clear the cart. Any failure rolls the whole unit back.
//
// Product rows are locked FOR UPDATE in ascending id order, so two
// concurrent checkouts touching the same products serialize instead of
// both passing the stock check.
func (r *OrderRepository) PlaceOrder(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error) {
	var orderID uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []cartItemRecord
		if err := tx.Where("user_id = ?", in.UserID).Order("id").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return domain.ErrCartEmpty
		}

		requested := requestedQuantities(items)
		productIDs := sortedProductIDs(requested)

		var products []productRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", productIDs).
			Order("id").
			Find(&products).Error; err != nil {
			return err
		}
		productByID := make(map[uint]*productRecord, len(products))
		for i := range products {
			productByID[products[i].ID] = &products[i]
		}

		orderItems, total, err := orderLines(items, productByID)
		if err != nil {
			return err
		}

		addressID, err := resolveAddress(tx, in.UserID, in.Address)
		if err != nil {
			return err
		}

		order := orderRecord{
			UserID:        in.UserID,
			Total:         total,
			Status:        string(domain.StatusPending),
			AddressID:     addressID,
			PaymentMethod: in.PaymentMethod,
			Items:         orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderID = order.ID

		for _, productID := range productIDs {
			qty := requested[productID]
			result := tx.Model(&productRecord{}).
				Where("id = ? AND stock >= ?", productID, qty).
				UpdateColumn("stock", gorm.Expr("stock - ?", qty))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				product := productByID[productID]
				return &domain.InsufficientStockError{
					ProductID: productID,
					Name:      product.Name,
					Requested: qty,
					Available: product.Stock,
				}
			}
		}

		return tx.Where("user_id = ?", in.UserID).Delete(&cartItemRecord{}).Error
	})
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, orderID)
}

// requestedQuantities sums cart line quantities per product, so a product
// held in several sizes is checked against stock as one demand.
func requestedQuantities(items []cartItemRecord) map[uint]int {
	requested := make(map[uint]int, len(items))
	for _, item := range items {
		requested[item.ProductID] += item.Quantity
	}
	return requested
}

// sortedProductIDs returns the product ids in ascending order. Locks and
// decrements follow this order so concurrent checkouts cannot deadlock.
func sortedProductIDs(requested map[uint]int) []uint {
	ids := make([]uint, 0, len(requested))
	for id := range requested {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// orderLines validates the aggregated demand of every cart line against the
// locked product rows, then produces the immutable order item snapshots and
// the order total as the sum of (current price x quantity) per line. An
// over-stock product aborts the whole computation with the offending
// product and its full requested quantity.
func orderLines(items []cartItemRecord, productByID map[uint]*productRecord) ([]orderItemRecord, float64, error) {
	requested := requestedQuantities(items)
	for _, productID := range sortedProductIDs(requested) {
		product, ok := productByID[productID]
		if !ok {
			return nil, 0, domain.ErrProductNotFound
		}
		if product.Stock < requested[productID] {
			return nil, 0, &domain.InsufficientStockError{
				ProductID: product.ID,
				Name:      product.Name,
				Requested: requested[productID],
				Available: product.Stock,
			}
		}
	}

	var total float64
	orderItems := make([]orderItemRecord, 0, len(items))
	for _, item := range items {
		product := productByID[item.ProductID]
		total += product.Price * float64(item.Quantity)
		orderItems = append(orderItems, orderItemRecord{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Size:      item.Size,
		})
	}
	return orderItems, total, nil
}

// resolveAddress reuses an existing address matching the submitted street,
// city, and zip exactly, creating one otherwise.
func resolveAddress(tx *gorm.DB, userID uint, in ports.ShippingAddressInput) (uint, error) {
	var addr addressRecord
	err := tx.Where("user_id = ? AND street = ? AND city = ? AND zip_code = ?",
		userID, in.Street, in.City, in.ZipCode).
		First(&addr).Error
	if err == nil {
		return addr.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	addr = addressRecord{
		UserID:  userID,
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		ZipCode: in.ZipCode,
		Country: in.Country,
	}
	if err := tx.Create(&addr).Error; err != nil {
		return 0, err
	}
	return addr.ID, nil
}

func (r *OrderRepository) Get(ctx context.Context, id uint) (*domain.Order, error) {
	var record orderRecord
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Address").
		Preload("Items.Product.Category").
		First(&record, "orders.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *OrderRepository) List(ctx context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("Address").
		Preload("Items.Product.Category").
		Order("created_at DESC")
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var records []orderRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(records))
	for i := range records {
		orders[i] = records[i].toDomain()
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
