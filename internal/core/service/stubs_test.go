package service

import (
	"context"
	"strings"
	"sync"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

// --- auth ---

type stubAuthRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: map[string]*domain.User{}}
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	r.users[user.Email] = &clone
	out := clone
	return &out, nil
}

// --- catalog ---

type stubCatalogRepo struct {
	mu         sync.Mutex
	nextID     uint
	products   map[uint]*domain.Product
	categories []*domain.Category
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{products: map[uint]*domain.Product{}}
}

func (r *stubCatalogRepo) addProduct(p domain.Product) *domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
	} else if p.ID > r.nextID {
		r.nextID = p.ID
	}
	r.products[p.ID] = &p
	return &p
}

func (r *stubCatalogRepo) ListProducts(_ context.Context, filter ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubCatalogRepo) GetProduct(_ context.Context, id uint) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubCatalogRepo) CreateProduct(_ context.Context, p *domain.Product) (*domain.Product, error) {
	return r.addProduct(*p), nil
}

func (r *stubCatalogRepo) UpdateProduct(_ context.Context, id uint, update ports.ProductUpdate) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Stock != nil {
		p.Stock = *update.Stock
	}
	clone := *p
	return &clone, nil
}

func (r *stubCatalogRepo) DeleteProduct(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubCatalogRepo) ListCategories(_ context.Context) ([]*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

// --- cart ---

type stubCartRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*domain.CartItem
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{items: map[uint]*domain.CartItem{}}
}

func (r *stubCartRepo) addItem(item domain.CartItem) *domain.CartItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == 0 {
		r.nextID++
		item.ID = r.nextID
	} else if item.ID > r.nextID {
		r.nextID = item.ID
	}
	r.items[item.ID] = &item
	return &item
}

func (r *stubCartRepo) ListByUser(_ context.Context, userID uint) ([]*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.CartItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCartRepo) Get(_ context.Context, itemID uint) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return nil, domain.ErrCartItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *stubCartRepo) FindByUserProductSize(_ context.Context, userID, productID uint, size string) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID && item.Size == size {
			clone := *item
			return &clone, nil
		}
	}
	return nil, domain.ErrCartItemNotFound
}

func (r *stubCartRepo) Create(_ context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	return r.addItem(*item), nil
}

func (r *stubCartRepo) UpdateQuantity(_ context.Context, itemID uint, quantity int) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return nil, domain.ErrCartItemNotFound
	}
	item.Quantity = quantity
	clone := *item
	return &clone, nil
}

func (r *stubCartRepo) Delete(_ context.Context, itemID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[itemID]; !ok {
		return domain.ErrCartItemNotFound
	}
	delete(r.items, itemID)
	return nil
}

// --- orders ---

type stubOrderRepo struct {
	mu            sync.Mutex
	placeOrderFn  func(ports.PlaceOrderInput) (*domain.Order, error)
	orders        map[uint]*domain.Order
	statusUpdates []domain.OrderStatus
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: map[uint]*domain.Order{}}
}

func (r *stubOrderRepo) PlaceOrder(_ context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	if r.placeOrderFn != nil {
		return r.placeOrderFn(input)
	}
	return nil, domain.ErrCartEmpty
}

func (r *stubOrderRepo) Get(_ context.Context, id uint) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *stubOrderRepo) List(_ context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Order, 0)
	for _, order := range r.orders {
		if filter.UserID != 0 && order.UserID != filter.UserID {
			continue
		}
		clone := *order
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id uint, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = status
	r.statusUpdates = append(r.statusUpdates, status)
	return nil
}

// --- events ---

type stubPublisher struct {
	mu     sync.Mutex
	events []ports.OrderEventInput
}

func (p *stubPublisher) Enqueue(event ports.OrderEventInput) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *stubPublisher) all() []ports.OrderEventInput {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ports.OrderEventInput, len(p.events))
	copy(out, p.events)
	return out
}

type stubEventRepo struct {
	mu       sync.Mutex
	inserted []*domain.OrderEvent
	err      error
}

func (r *stubEventRepo) Insert(_ context.Context, event *domain.OrderEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	clone := *event
	r.inserted = append(r.inserted, &clone)
	return nil
}
