package cart

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
)

const currentSchemaVersion = 1

type cartRecord struct {
	Version int              `toml:"version"`
	Items   []cartItemSchema `toml:"items"`
}

type cartItemSchema struct {
	ProductID   string  `toml:"product_id"`
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	Price       float64 `toml:"price"`
	Category    string  `toml:"category"`
	InStock     bool    `toml:"in_stock"`
	Quantity    int     `toml:"quantity"`
}

func encodeCart(items []domain.CartItem) (string, error) {
	record := cartRecord{Version: currentSchemaVersion}
	for _, item := range items {
		record.Items = append(record.Items, cartItemSchema{
			ProductID:   string(item.Product.ID),
			Name:        item.Product.Name,
			Description: item.Product.Description,
			Price:       item.Product.Price,
			Category:    item.Product.Category,
			InStock:     item.Product.InStock,
			Quantity:    item.Quantity,
		})
	}

	data, err := toml.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode cart record: %w", err)
	}

	return string(data), nil
}

func decodeCart(raw string) ([]domain.CartItem, error) {
	var record cartRecord
	if err := toml.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if record.Version > currentSchemaVersion {
		return nil, fmt.Errorf("%w: unsupported schema version %d (current %d)",
			domain.ErrMalformedRecord, record.Version, currentSchemaVersion)
	}

	items := make([]domain.CartItem, 0, len(record.Items))
	for _, entry := range record.Items {
		items = append(items, domain.CartItem{
			Product: domain.Product{
				ID:          domain.ProductID(entry.ProductID),
				Name:        entry.Name,
				Description: entry.Description,
				Price:       entry.Price,
				Category:    entry.Category,
				InStock:     entry.InStock,
			},
			Quantity: entry.Quantity,
		})
	}

	return items, nil
}
