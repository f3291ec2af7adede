package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Username     string    `gorm:"size:20;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null"         json:"email"`
	FirstName    string    `gorm:"size:20;not null"             json:"first_name"`
	LastName     string    `gorm:"size:20;not null"             json:"last_name"`
	PasswordHash string    `gorm:"not null"                     json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName is derived, not stored.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Category names are stored normalized: trimmed and lowercased, so two
// spellings differing only by case or surrounding whitespace collide on
// the unique index.
type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"     json:"category_id"`
	Name      string    `gorm:"size:20;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
