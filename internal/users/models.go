package users

// User is one record in the users collection. The JSON field names are the
// wire format served to clients and the layout of data/users.json.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Field exposes User to the query engine.
func (u User) Field(name string) (any, bool) {
	switch name {
	case "id":
		return u.ID, true
	case "name":
		return u.Name, true
	case "email":
		return u.Email, true
	case "role":
		return u.Role, true
	default:
		return nil, false
	}
}

// seedUsers is the default collection written on first access.
func seedUsers() []User {
	return []User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "user"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "admin"},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: "user"},
		{ID: 4, Name: "Alice Brown", Email: "alice@example.com", Role: "moderator"},
		{ID: 5, Name: "Charlie Wilson", Email: "charlie@example.com", Role: "user"},
	}
}
