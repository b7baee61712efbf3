package models

// User is the owner of rules, purchases and lots. The demo deployment
// finds-or-creates a single user by email.
type User struct {
	Base
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`
}
