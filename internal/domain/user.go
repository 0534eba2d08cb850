package domain

// User represents a registered user.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser carries the caller-supplied fields of a user to be created.
// The id is assigned by the service.
type NewUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch is a partial update. Nil fields are left untouched;
// fields absent from the request body decode to nil.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserService defines the use-case operations for users.
type UserService interface {
	GetAllUsers() ([]User, error)
	GetUserByID(id int) (*User, error)
	CreateUser(input NewUser) (*User, error)
	UpdateUser(id int, patch UserPatch) (*User, error)
	DeleteUser(id int) (bool, error)
}

// UserChecker is the capability the document layer needs from the user
// layer: confirm that a user id refers to an existing user. Satisfied by
// UserService, or by any database-backed or remote implementation.
type UserChecker interface {
	GetUserByID(id int) (*User, error)
}
