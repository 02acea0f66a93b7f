// Package catalog holds the static SparkVibe product showcase.
package catalog

import "github.com/sparkvibe/sparkvibe-cli/internal/domain"

var products = []domain.Product{
	{
		ID:          "creator-toolkit-pro",
		Name:        "Creator Toolkit Pro",
		Description: "Complete suite of templates, presets and workflows for professional creators.",
		Price:       49.99,
		Category:    "Tools",
		InStock:     true,
	},
	{
		ID:          "brand-identity-pack",
		Name:        "Brand Identity Pack",
		Description: "Logos, color palettes and typography systems to launch a cohesive brand.",
		Price:       29.99,
		Category:    "Branding",
		InStock:     true,
	},
	{
		ID:          "vibe-preset-collection",
		Name:        "Vibe Preset Collection",
		Description: "Curated photo and video presets for lifestyle content.",
		Price:       19.99,
		Category:    "Presets",
		InStock:     true,
	},
	{
		ID:          "social-launch-playbook",
		Name:        "Social Launch Playbook",
		Description: "Step-by-step launch strategy for creative product drops.",
		Price:       24.99,
		Category:    "Guides",
		InStock:     true,
	},
	{
		ID:          "moodboard-templates",
		Name:        "Moodboard Templates",
		Description: "Drag-and-drop moodboard layouts for client pitches.",
		Price:       14.99,
		Category:    "Templates",
		InStock:     true,
	},
	{
		ID:          "studio-lighting-kit",
		Name:        "Studio Lighting Kit",
		Description: "Portable lighting setup for home studios.",
		Price:       89.99,
		Category:    "Gear",
		InStock:     false,
	},
}

// All returns the showcase products in display order.
func All() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	return out
}

func ByID(id domain.ProductID) (domain.Product, error) {
	for _, product := range products {
		if product.ID == id {
			return product, nil
		}
	}

	return domain.Product{}, domain.ErrProductNotFound
}
