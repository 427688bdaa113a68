package products

// Product is one record in the products collection.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Field exposes Product to the query engine.
func (p Product) Field(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "name":
		return p.Name, true
	case "price":
		return p.Price, true
	case "category":
		return p.Category, true
	default:
		return nil, false
	}
}

func seedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Category: "electronics"},
		{ID: 2, Name: "Smartphone", Price: 699.99, Category: "electronics"},
		{ID: 3, Name: "Headphones", Price: 149.99, Category: "electronics"},
		{ID: 4, Name: "Book", Price: 19.99, Category: "education"},
		{ID: 5, Name: "Coffee Mug", Price: 12.99, Category: "home"},
	}
}
