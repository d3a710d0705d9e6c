package models

import "time"

// Rappen is a signed amount in the smallest currency unit (one hundredth
// of a Franken). All accounting is done on this type; nothing is rounded
// after parsing.
type Rappen int64

// Product is a purchasable item from the catalog
type Product struct {
	Identifier string `db:"identifier"`
	Name       string `db:"name"`
	Price      Rappen `db:"price"`
}

// User represents a known message sender
type User struct {
	Id        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// LedgerEntry is one immutable movement against a user's balance.
// ProductName is empty for free-form amount entries.
type LedgerEntry struct {
	Id          string    `db:"id"`
	UserId      string    `db:"user_id"`
	Amount      Rappen    `db:"amount"`
	ProductName string    `db:"product_name"`
	CreatedAt   time.Time `db:"created_at"`
}

// Balance is the derived sum of a user's ledger entries
type Balance struct {
	UserId string `db:"user_id"`
	Name   string `db:"name"`
	Amount Rappen `db:"amount"`
}
