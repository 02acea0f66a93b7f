package domain

type ProductID string

type Product struct {
	ID          ProductID
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     bool
}
