package migrations

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&customerRecord{},
		&productRecord{},
		&orderRecord{},
	)
}

// Customer schema mirrors the customers Postgres adapter.
type customerRecord struct {
	ID           int64  `gorm:"primaryKey;column:id"`
	Name         string `gorm:"column:name"`
	Email        string `gorm:"column:email;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash"`
}

func (customerRecord) TableName() string { return "customers" }

// Product schema mirrors the products Postgres adapter.
type productRecord struct {
	ID          int64   `gorm:"primaryKey;column:id"`
	Name        string  `gorm:"column:name"`
	Description string  `gorm:"column:description"`
	Price       float64 `gorm:"column:price"`
	Stock       int32   `gorm:"column:stock"`
}

func (productRecord) TableName() string { return "products" }

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID          int64         `gorm:"primaryKey;column:id"`
	CustomerID  int64         `gorm:"column:customer_id;index"`
	ProductIDs  pq.Int64Array `gorm:"column:product_ids;type:bigint[]"`
	TotalAmount float64       `gorm:"column:total_amount"`
}

func (orderRecord) TableName() string { return "orders" }
