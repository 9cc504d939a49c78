// models/user.go
package models

// RoleAdmin is the only privileged role.
const RoleAdmin = "admin"

// User is the typed subset of a user document needed for authorization.
// The stored document may carry any number of further profile fields.
// ID and Role stay untyped: users are stored as submitted, so either may hold
// any BSON value.
type User struct {
	ID    interface{} `bson:"_id,omitempty" json:"_id"`
	Email string      `bson:"email" json:"email"`
	Role  interface{} `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
// Any role value other than the string "admin" is non-admin.
func (u *User) IsAdmin() bool {
	if u == nil {
		return false
	}
	role, ok := u.Role.(string)
	return ok && role == RoleAdmin
}
