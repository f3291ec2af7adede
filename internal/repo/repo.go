package repo

import "gorm.io/gorm"

// GormRepo is constructed once at startup and borrowed by every
// request; uniqueness is enforced by the database constraints, not by
// application-level locking.
type GormRepo struct {
	DB *gorm.DB
}
