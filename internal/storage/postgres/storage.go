package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/spinzone/backend/internal/domain/errors"
	"github.com/spinzone/backend/internal/domain/model"
	"github.com/spinzone/backend/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage, extracted so
// tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type pendingRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) PendingTransactions() repository.PendingTransactionRepository {
	return &pendingRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price BIGINT NOT NULL,
            brand TEXT NOT NULL DEFAULT '',
            weight DOUBLE PRECISION NOT NULL DEFAULT 0,
            stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
            category_id BIGINT
        )`,
		`CREATE TABLE IF NOT EXISTS pending_transactions (
            buy_order TEXT PRIMARY KEY,
            session_id TEXT NOT NULL,
            amount BIGINT NOT NULL,
            items JSONB NOT NULL DEFAULT '[]',
            user_id BIGINT REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            buy_order TEXT UNIQUE NOT NULL,
            customer_id BIGINT REFERENCES users(id),
            payment_method TEXT NOT NULL,
            order_status TEXT NOT NULL,
            shipment_status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_lines (
            id SERIAL PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            product_id BIGINT NOT NULL,
            quantity INTEGER NOT NULL,
            unit_price BIGINT NOT NULL,
            subtotal BIGINT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_lines_order ON order_lines(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_pending_created ON pending_transactions(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, name, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.Name = name
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ProductRepository implementation ---

const productColumns = `id, name, description, price, brand, weight, stock, category_id`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Brand, &p.Weight, &p.Stock, &p.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) collect(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Brand, &p.Weight, &p.Stock, &p.CategoryID); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	return scanProduct(r.storage.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id))
}

func (r *productRepository) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, description, price, brand, weight, stock, category_id)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, p.Name, p.Description, p.Price, p.Brand, p.Weight, p.Stock, p.CategoryID).Scan(&p.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Update(ctx context.Context, id int64, p model.Product) (*model.Product, error) {
	const query = `UPDATE products
                   SET name=$1, description=$2, price=$3, brand=$4, weight=$5, stock=$6, category_id=$7
                   WHERE id=$8
                   RETURNING ` + productColumns
	return scanProduct(r.storage.pool.QueryRow(ctx, query, p.Name, p.Description, p.Price, p.Brand, p.Weight, p.Stock, p.CategoryID, id))
}

// updatableProductColumns guards PartialUpdate against arbitrary column names.
var updatableProductColumns = map[string]struct{}{
	"name":        {},
	"description": {},
	"price":       {},
	"brand":       {},
	"weight":      {},
	"stock":       {},
	"category_id": {},
}

func (r *productRepository) PartialUpdate(ctx context.Context, id int64, fields map[string]any) (*model.Product, error) {
	if len(fields) == 0 {
		return nil, domainErrors.ErrMissingField
	}

	assignments := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for column, value := range fields {
		if _, ok := updatableProductColumns[column]; !ok {
			return nil, fmt.Errorf("unknown product column %q", column)
		}
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE products SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(assignments, ", "), len(args), productColumns)
	return scanProduct(r.storage.pool.QueryRow(ctx, query, args...))
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Search(ctx context.Context, term string) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products
                   WHERE name ILIKE $1 OR description ILIKE $1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *productRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE category_id=$1 ORDER BY id`, categoryID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// DecrementStock is a single conditional update clamped at zero, so concurrent
// checkouts touching the same product cannot lose updates or drive stock
// negative.
func (r *productRepository) DecrementStock(ctx context.Context, id int64, quantity int) error {
	const query = `UPDATE products SET stock = GREATEST(stock - $2, 0) WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, bool, error) {
	const insertOrder = `INSERT INTO orders (id, buy_order, customer_id, payment_method, order_status, shipment_status)
                         VALUES ($1, $2, $3, $4, $5, $6)
                         ON CONFLICT (buy_order) DO NOTHING
                         RETURNING created_at`
	const insertLine = `INSERT INTO order_lines (order_id, product_id, quantity, unit_price, subtotal)
                        VALUES ($1, $2, $3, $4, $5)`

	created := false
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrder,
			order.ID, order.BuyOrder, order.CustomerID, order.PaymentMethod,
			order.OrderStatus, order.ShipmentStatus,
		).Scan(&order.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Conflict on buy_order: this checkout was already
				// materialized by an earlier confirm.
				return nil
			}
			return err
		}

		created = true
		for _, line := range order.Lines {
			if _, err := tx.Exec(ctx, insertLine, order.ID, line.ProductID, line.Quantity, line.UnitPrice, line.Subtotal); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if !created {
		existing, err := r.GetByBuyOrder(ctx, order.BuyOrder)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	return &order, true, nil
}

func (r *orderRepository) GetByBuyOrder(ctx context.Context, buyOrder string) (*model.Order, error) {
	const query = `SELECT id, buy_order, customer_id, payment_method, order_status, shipment_status, created_at
                   FROM orders WHERE buy_order=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, buyOrder).Scan(
		&o.ID, &o.BuyOrder, &o.CustomerID, &o.PaymentMethod, &o.OrderStatus, &o.ShipmentStatus, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	lines, err := r.linesByOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

func (r *orderRepository) linesByOrder(ctx context.Context, orderID string) ([]model.OrderLine, error) {
	const query = `SELECT product_id, quantity, unit_price, subtotal FROM order_lines WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []model.OrderLine
	for rows.Next() {
		var l model.OrderLine
		if err := rows.Scan(&l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	const query = `SELECT id, buy_order, customer_id, payment_method, order_status, shipment_status, created_at
                   FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.BuyOrder, &o.CustomerID, &o.PaymentMethod, &o.OrderStatus, &o.ShipmentStatus, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- PendingTransactionRepository implementation ---

func (r *pendingRepository) Put(ctx context.Context, tx model.PendingTransaction) error {
	items, err := json.Marshal(tx.Items)
	if err != nil {
		return err
	}
	const query = `INSERT INTO pending_transactions (buy_order, session_id, amount, items, user_id)
                   VALUES ($1, $2, $3, $4, $5)
                   ON CONFLICT (buy_order) DO UPDATE
                   SET session_id=EXCLUDED.session_id, amount=EXCLUDED.amount,
                       items=EXCLUDED.items, user_id=EXCLUDED.user_id`
	_, err = r.storage.pool.Exec(ctx, query, tx.BuyOrder, tx.SessionID, tx.Amount, items, tx.UserID)
	return err
}

func (r *pendingRepository) GetByBuyOrder(ctx context.Context, buyOrder string) (*model.PendingTransaction, error) {
	const query = `SELECT buy_order, session_id, amount, items, user_id, created_at
                   FROM pending_transactions WHERE buy_order=$1`
	var (
		tx    model.PendingTransaction
		items []byte
	)
	err := r.storage.pool.QueryRow(ctx, query, buyOrder).Scan(&tx.BuyOrder, &tx.SessionID, &tx.Amount, &items, &tx.UserID, &tx.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &tx.Items); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *pendingRepository) Delete(ctx context.Context, buyOrder string) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM pending_transactions WHERE buy_order=$1`, buyOrder)
	return err
}

func (r *pendingRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM pending_transactions WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
