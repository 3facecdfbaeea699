package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/spinzone/backend/internal/domain/errors"
	"github.com/spinzone/backend/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.Next, Email: email, Name: name, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps catalog entries in-memory.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Next     int64
	Err      error
	// DecrementErr fails only stock decrements, leaving reads working.
	DecrementErr   error
	DecrementCalls []DecrementCall
}

// DecrementCall records a stock decrement request.
type DecrementCall struct {
	ProductID int64
	Quantity  int
}

// NewProductRepositoryStub constructs stub with initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		result = append(result, *p)
	}
	return result, nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p.ID = s.Next
	s.Next++
	s.Products[p.ID] = &p
	copied := p
	return &copied, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, id int64, p model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	p.ID = id
	s.Products[id] = &p
	copied := p
	return &copied, nil
}

func (s *ProductRepositoryStub) PartialUpdate(ctx context.Context, id int64, fields map[string]any) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if name, ok := fields["name"].(string); ok {
		p.Name = name
	}
	if stock, ok := fields["stock"].(int); ok {
		p.Stock = stock
	}
	copied := *p
	return &copied, nil
}

func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

func (s *ProductRepositoryStub) Search(ctx context.Context, term string) ([]model.Product, error) {
	return s.List(ctx)
}

func (s *ProductRepositoryStub) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			result = append(result, *p)
		}
	}
	return result, nil
}

// DecrementStock mirrors the production clamp-at-zero behaviour.
func (s *ProductRepositoryStub) DecrementStock(ctx context.Context, id int64, quantity int) error {
	s.DecrementCalls = append(s.DecrementCalls, DecrementCall{ProductID: id, Quantity: quantity})
	if s.DecrementErr != nil {
		return s.DecrementErr
	}
	if s.Err != nil {
		return s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	p.Stock -= quantity
	if p.Stock < 0 {
		p.Stock = 0
	}
	return nil
}

// OrderRepositoryStub keeps orders in-memory keyed by buy order, enforcing
// the same insert-or-fetch idempotency as the production repository.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders map[string]*model.Order

	CreateFn  func(context.Context, model.Order) (*model.Order, bool, error)
	CreateErr error
}

// NewOrderRepositoryStub constructs stub with initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, bool, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.CreateErr != nil {
		return nil, false, s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.Orders[order.BuyOrder]; ok {
		copied := *existing
		return &copied, false, nil
	}
	order.CreatedAt = time.Now()
	s.Orders[order.BuyOrder] = &order
	copied := order
	return &copied, true, nil
}

func (s *OrderRepositoryStub) GetByBuyOrder(ctx context.Context, buyOrder string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.Orders[buyOrder]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, order := range s.Orders {
		if order.CustomerID != nil && *order.CustomerID == customerID {
			result = append(result, *order)
		}
	}
	return result, nil
}

// PendingRepositoryStub is an in-memory staging ledger.
type PendingRepositoryStub struct {
	Entries map[string]*model.PendingTransaction

	PutErr    error
	GetErr    error
	DeleteErr error
	Deleted   []string
}

// NewPendingRepositoryStub constructs stub with initialized map.
func NewPendingRepositoryStub() *PendingRepositoryStub {
	return &PendingRepositoryStub{Entries: make(map[string]*model.PendingTransaction)}
}

func (s *PendingRepositoryStub) Put(ctx context.Context, tx model.PendingTransaction) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	s.Entries[tx.BuyOrder] = &tx
	return nil
}

func (s *PendingRepositoryStub) GetByBuyOrder(ctx context.Context, buyOrder string) (*model.PendingTransaction, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if tx, ok := s.Entries[buyOrder]; ok {
		copied := *tx
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PendingRepositoryStub) Delete(ctx context.Context, buyOrder string) error {
	s.Deleted = append(s.Deleted, buyOrder)
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.Entries, buyOrder)
	return nil
}

func (s *PendingRepositoryStub) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	if s.DeleteErr != nil {
		return 0, s.DeleteErr
	}
	var swept int64
	for key, tx := range s.Entries {
		if tx.CreatedAt.Before(cutoff) {
			delete(s.Entries, key)
			swept++
		}
	}
	return swept, nil
}
