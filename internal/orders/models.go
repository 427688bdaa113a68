package orders

// Order is one record in the orders collection.
type Order struct {
	ID     int     `json:"id"`
	UserID int     `json:"user_id"`
	Total  float64 `json:"total"`
	Status string  `json:"status"`
}

// Field exposes Order to the query engine.
func (o Order) Field(name string) (any, bool) {
	switch name {
	case "id":
		return o.ID, true
	case "user_id":
		return o.UserID, true
	case "total":
		return o.Total, true
	case "status":
		return o.Status, true
	default:
		return nil, false
	}
}

func seedOrders() []Order {
	return []Order{
		{ID: 1, UserID: 1, Total: 150.99, Status: "completed"},
		{ID: 2, UserID: 2, Total: 299.99, Status: "processing"},
		{ID: 3, UserID: 1, Total: 45.50, Status: "shipped"},
		{ID: 4, UserID: 3, Total: 89.99, Status: "completed"},
		{ID: 5, UserID: 4, Total: 1200.00, Status: "pending"},
	}
}
