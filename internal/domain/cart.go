package domain

type CartItem struct {
	Product  Product
	Quantity int
}

func CartTotalItems(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}

	return total
}

func CartTotalPrice(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}

	return total
}
