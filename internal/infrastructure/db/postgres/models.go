package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/solestore/storefront-api/internal/core/domain"
)

type userRecord struct {
	ID           uint      `gorm:"primaryKey;column:id"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	Name         string    `gorm:"column:name"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;type:varchar(16);not null;default:USER"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }

type categoryRecord struct {
	ID          uint      `gorm:"primaryKey;column:id"`
	Name        string    `gorm:"column:name;not null"`
	Slug        string    `gorm:"column:slug;uniqueIndex;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (categoryRecord) TableName() string { return "categories" }

type productRecord struct {
	ID          uint            `gorm:"primaryKey;column:id"`
	Name        string          `gorm:"column:name;not null"`
	Description string          `gorm:"column:description"`
	Price       float64         `gorm:"column:price;not null"`
	Images      pq.StringArray  `gorm:"column:images;type:text[]"`
	Stock       int             `gorm:"column:stock;not null;default:0;check:chk_products_stock,stock >= 0"`
	Sizes       pq.StringArray  `gorm:"column:sizes;type:text[]"`
	CategoryID  uint            `gorm:"column:category_id;index;not null"`
	Category    *categoryRecord `gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time       `gorm:"column:created_at;index"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

type cartItemRecord struct {
	ID        uint           `gorm:"primaryKey;column:id"`
	UserID    uint           `gorm:"column:user_id;uniqueIndex:idx_cart_user_product_size;not null"`
	ProductID uint           `gorm:"column:product_id;uniqueIndex:idx_cart_user_product_size;not null"`
	Size      string         `gorm:"column:size;uniqueIndex:idx_cart_user_product_size;not null"`
	Quantity  int            `gorm:"column:quantity;not null;check:chk_cart_quantity,quantity > 0"`
	Product   *productRecord `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (cartItemRecord) TableName() string { return "cart_items" }

type addressRecord struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	UserID    uint      `gorm:"column:user_id;index;not null"`
	Street    string    `gorm:"column:street;not null"`
	City      string    `gorm:"column:city;not null"`
	State     string    `gorm:"column:state"`
	ZipCode   string    `gorm:"column:zip_code;not null"`
	Country   string    `gorm:"column:country;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (addressRecord) TableName() string { return "addresses" }

type orderRecord struct {
	ID            uint              `gorm:"primaryKey;column:id"`
	UserID        uint              `gorm:"column:user_id;index;not null"`
	User          *userRecord       `gorm:"foreignKey:UserID"`
	Total         float64           `gorm:"column:total;not null"`
	Status        string            `gorm:"column:status;type:varchar(16);index;not null"`
	AddressID     uint              `gorm:"column:address_id;not null"`
	Address       *addressRecord    `gorm:"foreignKey:AddressID"`
	PaymentMethod string            `gorm:"column:payment_method"`
	Items         []orderItemRecord `gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time         `gorm:"column:created_at;index"`
	UpdatedAt     time.Time         `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

type orderItemRecord struct {
	ID        uint           `gorm:"primaryKey;column:id"`
	OrderID   uint           `gorm:"column:order_id;index;not null"`
	ProductID uint           `gorm:"column:product_id;index;not null"`
	Product   *productRecord `gorm:"foreignKey:ProductID"`
	Quantity  int            `gorm:"column:quantity;not null"`
	Price     float64        `gorm:"column:price;not null"`
	Size      string         `gorm:"column:size"`
}

func (orderItemRecord) TableName() string { return "order_items" }

type orderEventRecord struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	OrderID   uint      `gorm:"column:order_id;index;not null"`
	Status    string    `gorm:"column:status;type:varchar(16);not null"`
	Actor     string    `gorm:"column:actor"`
	Timestamp time.Time `gorm:"column:timestamp;not null"`
}

func (orderEventRecord) TableName() string { return "order_events" }

// --- record ↔ domain mapping ---

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *categoryRecord) toDomain() *domain.Category {
	return &domain.Category{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

func (r *productRecord) toDomain() *domain.Product {
	p := &domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Images:      []string(r.Images),
		Stock:       r.Stock,
		Sizes:       []string(r.Sizes),
		CategoryID:  r.CategoryID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Category != nil {
		p.Category = r.Category.toDomain()
	}
	return p
}

func (r *cartItemRecord) toDomain() *domain.CartItem {
	item := &domain.CartItem{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Size:      r.Size,
		Quantity:  r.Quantity,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Product != nil {
		item.Product = r.Product.toDomain()
	}
	return item
}

func (r *addressRecord) toDomain() *domain.Address {
	return &domain.Address{
		ID:        r.ID,
		UserID:    r.UserID,
		Street:    r.Street,
		City:      r.City,
		State:     r.State,
		ZipCode:   r.ZipCode,
		Country:   r.Country,
		CreatedAt: r.CreatedAt,
	}
}

func (r *orderRecord) toDomain() *domain.Order {
	order := &domain.Order{
		ID:            r.ID,
		UserID:        r.UserID,
		Total:         r.Total,
		Status:        domain.OrderStatus(r.Status),
		AddressID:     r.AddressID,
		PaymentMethod: r.PaymentMethod,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.User != nil {
		order.User = r.User.toDomain()
	}
	if r.Address != nil {
		order.Address = r.Address.toDomain()
	}
	order.Items = make([]domain.OrderItem, len(r.Items))
	for i := range r.Items {
		order.Items[i] = *r.Items[i].toDomain()
	}
	return order
}

func (r *orderItemRecord) toDomain() *domain.OrderItem {
	item := &domain.OrderItem{
		ID:        r.ID,
		OrderID:   r.OrderID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Price:     r.Price,
		Size:      r.Size,
	}
	if r.Product != nil {
		item.Product = r.Product.toDomain()
	}
	return item
}
