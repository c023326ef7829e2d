package user

// User represents a user entity in the system.
type User struct {
	ID        string // ID is the unique identifier for the user, assigned at creation
	FirstName string // FirstName is the user's given name
	LastName  string // LastName is the user's family name
	Email     string // Email is the unique email address of the user
}
