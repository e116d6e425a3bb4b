package domain

import "time" // Sale timestamps

// Transaction Model
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                    // Primary key, assigned on insert
	Title       string    `gorm:"type:varchar(255)" json:"title"`          // Product title
	Price       float64   `gorm:"not null;default:0" json:"price"`         // Product price
	Description string    `gorm:"type:text" json:"description"`            // Product description
	Category    string    `gorm:"type:varchar(128);index" json:"category"` // Product category
	Image       string    `gorm:"type:varchar(512)" json:"image"`          // Product image URL
	Sold        bool      `gorm:"not null;default:false" json:"sold"`      // Whether the product was sold
	DateOfSale  time.Time `gorm:"index" json:"dateOfSale"`                 // Sale timestamp, only the month is queried
}

// SaleMonth returns the calendar month of the sale in UTC.
func (t Transaction) SaleMonth() int {
	return int(t.DateOfSale.UTC().Month())
}

// TransactionFilter narrows a listing. Both parts are optional and combine with AND.
type TransactionFilter struct {
	Month  *int   // Sale month 1..12, nil means any month
	Search string // Case-insensitive substring of title, description or category
}
