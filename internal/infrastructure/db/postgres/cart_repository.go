package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

var _ ports.CartRepository = (*CartRepository)(nil)

// CartRepository persists cart lines in PostgreSQL.
type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.CartItem, error) {
	var records []cartItemRecord
	err := r.db.WithContext(ctx).
		Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	items := make([]*domain.CartItem, len(records))
	for i := range records {
		items[i] = records[i].toDomain()
	}
	return items, nil
}

func (r *CartRepository) Get(ctx context.Context, itemID uint) (*domain.CartItem, error) {
	var record cartItemRecord
	err := r.db.WithContext(ctx).Preload("Product.Category").First(&record, "cart_items.id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *CartRepository) FindByUserProductSize(ctx context.Context, userID, productID uint, size string) (*domain.CartItem, error) {
	var record cartItemRecord
	err := r.db.WithContext(ctx).
		First(&record, "user_id = ? AND product_id = ? AND size = ?", userID, productID, size).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *CartRepository) Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	record := cartItemRecord{
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Size:      item.Size,
		Quantity:  item.Quantity,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, record.ID)
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, itemID uint, quantity int) (*domain.CartItem, error) {
	result := r.db.WithContext(ctx).
		Model(&cartItemRecord{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrCartItemNotFound
	}
	return r.Get(ctx, itemID)
}

func (r *CartRepository) Delete(ctx context.Context, itemID uint) error {
	result := r.db.WithContext(ctx).Delete(&cartItemRecord{}, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}
