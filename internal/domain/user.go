package domain

// Role of a user in the identity store
type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

// User is the identity store's view of a person
type User struct {
	ID    string
	Role  Role
	Email string
	Name  string
}

// IsStaffOrAdmin returns true for roles that create confirmed reservations
// and may act on behalf of a client
func (u *User) IsStaffOrAdmin() bool {
	return u.Role == RoleStaff || u.Role == RoleAdmin
}

// HasRole returns true if the user has one of the given roles
func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// Animal is the animal registry's view of a patient
type Animal struct {
	ID      string
	OwnerID string
	Name    string
}

// BelongsTo returns true if the animal is owned by clientID
func (a *Animal) BelongsTo(clientID string) bool {
	return a.OwnerID == clientID
}
