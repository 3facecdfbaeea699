package dto

// ProductRequest creates or replaces a catalog entry.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Brand       string  `json:"brand"`
	Weight      float64 `json:"weight"`
	Stock       int     `json:"stock"`
	CategoryID  *int64  `json:"categoryId"`
}

// ProductResponse describes a catalog entry.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Brand       string  `json:"brand"`
	Weight      float64 `json:"weight"`
	Stock       int     `json:"stock"`
	CategoryID  *int64  `json:"categoryId,omitempty"`
}
