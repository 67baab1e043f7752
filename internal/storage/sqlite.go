package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"phoneline/internal/domain"
)

// listLimit caps how many orders a single dashboard poll can pull.
const listLimit = 100

type SQLiteRepository struct {
	DB *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the schema.
func Open(path string) (*SQLiteRepository, error) {
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &SQLiteRepository{DB: db}, nil
}

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			business_id TEXT NOT NULL DEFAULT 'default',
			order_number TEXT NOT NULL,
			customer_name TEXT NOT NULL DEFAULT 'Guest',
			customer_phone TEXT NOT NULL DEFAULT '',
			items TEXT NOT NULL DEFAULT '[]',
			special_instructions TEXT NOT NULL DEFAULT '',
			total REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'new',
			created_at INTEGER NOT NULL
		)`)
	return err
}

func (r *SQLiteRepository) Close() error {
	return r.DB.Close()
}

// CreateOrder inserts a new order and fills in its id and creation time.
func (r *SQLiteRepository) CreateOrder(order *domain.Order) error {
	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	order.CreatedAt = time.Now().UTC()
	res, err := r.DB.Exec(`
		INSERT INTO orders (business_id, order_number, customer_name, customer_phone,
			items, special_instructions, total, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.BusinessID, order.OrderNumber, order.CustomerName, order.CustomerPhone,
		string(items), order.SpecialInstructions, order.Total, order.Status,
		toMillis(order.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read order id: %w", err)
	}
	order.ID = id
	return nil
}

// ListOrders returns the newest orders first, optionally filtered by business
// and status (empty string means no filter), capped at 100 rows.
func (r *SQLiteRepository) ListOrders(businessID, status string) ([]domain.Order, error) {
	query := `
		SELECT id, business_id, order_number, customer_name, customer_phone,
			items, special_instructions, total, status, created_at
		FROM orders`
	var conds []string
	var args []any
	if businessID != "" {
		conds = append(conds, "business_id = ?")
		args = append(args, businessID)
	}
	if status != "" {
		conds = append(conds, "status = ?")
		args = append(args, status)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	// id breaks ties between orders created in the same millisecond
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, listLimit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		var items string
		var createdAt int64
		if err := rows.Scan(&order.ID, &order.BusinessID, &order.OrderNumber,
			&order.CustomerName, &order.CustomerPhone, &items,
			&order.SpecialInstructions, &order.Total, &order.Status, &createdAt); err != nil {
			log.Printf("[storage] order row scan error: %v", err)
			continue
		}
		order.Items = decodeItems(order.ID, items)
		order.CreatedAt = fromMillis(createdAt)
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateStatus overwrites the status of the given order and reports how many
// rows matched. Zero rows means the id does not exist.
func (r *SQLiteRepository) UpdateStatus(id int64, status string) (int64, error) {
	res, err := r.DB.Exec("UPDATE orders SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func decodeItems(orderID int64, raw string) []domain.OrderItem {
	var items []domain.OrderItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("[storage] undecodable items blob for order %d, serving empty list: %v", orderID, err)
		return []domain.OrderItem{}
	}
	if items == nil {
		items = []domain.OrderItem{}
	}
	return items
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
