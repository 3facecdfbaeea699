package model

// Product describes a catalog entry.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       int64
	Brand       string
	Weight      float64
	Stock       int
	CategoryID  *int64
}
