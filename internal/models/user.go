package models

// User represents a user account in the system.
type User struct {
	Base
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Password string `json:"-" gorm:"not null"` // Never expose this to the client
}

// TableName pins the table to "users".
func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the payload accepted by POST /users.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// ToUser maps the request onto a new, not yet persisted User.
func (r CreateUserRequest) ToUser() *User {
	return &User{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}
