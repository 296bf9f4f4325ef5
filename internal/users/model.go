package users

import (
	"github.com/ewok0116/CS308-Project/internal/store"
)

// User is a record in the users collection. Documents are keyed either
// by the stringified sequential UserID (registration) or by the
// identity provider's subject id (role writes for provider accounts).
type User struct {
	ID       string
	UserID   int64
	Name     string
	Email    string
	Password string
	Address  string
	Role     string
}

// Public returns the response form of the record: the password never
// leaves the service.
func (u *User) Public() map[string]any {
	out := map[string]any{
		"id":      u.ID,
		"user_id": u.UserID,
		"name":    u.Name,
		"email":   u.Email,
	}
	if u.Address != "" {
		out["address"] = u.Address
	}
	if u.Role != "" {
		out["role"] = u.Role
	}
	return out
}

func (u *User) data() map[string]any {
	data := map[string]any{
		"user_id":  u.UserID,
		"name":     u.Name,
		"email":    u.Email,
		"password": u.Password,
		"address":  u.Address,
	}
	if u.Role != "" {
		data["role"] = u.Role
	}
	return data
}

func fromDocument(doc store.Document) *User {
	return &User{
		ID:       doc.ID,
		UserID:   asInt64(doc.Data["user_id"]),
		Name:     asString(doc.Data["name"]),
		Email:    asString(doc.Data["email"]),
		Password: asString(doc.Data["password"]),
		Address:  asString(doc.Data["address"]),
		Role:     asString(doc.Data["role"]),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// Firestore hands back integers as int64, but documents written by
// other tooling may decode as float64 or int.
func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
