package service

import (
	"context"
	"sync"

	"github.com/evgear/store-backend/internal/cache"
	"github.com/evgear/store-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockProductRepository implements repository.ProductRepository for testing
type mockProductRepository struct {
	m        sync.RWMutex
	products map[string]domain.Product // hex id -> product
	err      error

	findCalls int
}

func newMockProductRepository(products ...domain.Product) *mockProductRepository {
	m := &mockProductRepository{products: make(map[string]domain.Product)}
	for _, p := range products {
		m.products[p.ID.Hex()] = p
	}
	return m
}

func (m *mockProductRepository) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.findCalls++
	var found []domain.Product
	for _, id := range ids {
		if p, ok := m.products[id.Hex()]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

func (m *mockProductRepository) List(context.Context, int64) ([]domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	var all []domain.Product
	for _, p := range m.products {
		all = append(all, p)
	}
	return all, nil
}

func (m *mockProductRepository) Count(context.Context) (int64, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.products)), nil
}

func (m *mockProductRepository) Insert(_ context.Context, product *domain.Product) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	id := primitive.NewObjectID()
	p := *product
	p.ID = id
	m.products[id.Hex()] = p
	return id, nil
}

// mockOrderRepository implements repository.OrderRepository for testing
type mockOrderRepository struct {
	m       sync.Mutex
	orders  []*domain.Order // captures every order passed to Insert
	err     error
	assigns primitive.ObjectID
}

func (m *mockOrderRepository) Insert(_ context.Context, order *domain.Order) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	m.orders = append(m.orders, order)
	if m.assigns.IsZero() {
		m.assigns = primitive.NewObjectID()
	}
	return m.assigns, nil
}

func (m *mockOrderRepository) inserted() []*domain.Order {
	m.m.Lock()
	defer m.m.Unlock()
	return m.orders
}

// mockCache implements cache.ProductCache for testing
type mockCache struct {
	m        sync.RWMutex
	products []domain.Product
	has      bool
	err      error
}

func (m *mockCache) Get(context.Context) ([]domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	if !m.has {
		return nil, cache.ErrCacheMiss
	}
	return m.products, nil
}

func (m *mockCache) Set(_ context.Context, products []domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.products = products
	m.has = true
	return m.err
}

func (m *mockCache) Delete(context.Context) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.products = nil
	m.has = false
	return m.err
}

func (m *mockCache) cached() ([]domain.Product, bool) {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.products, m.has
}
