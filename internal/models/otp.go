package models

import "time"

// OneTimeCode holds a pending email confirmation code. At most one live code
// exists per email; issuing a new one replaces any unconsumed predecessor.
type OneTimeCode struct {
	BaseModel
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
}

// Expired reports whether the code is past its TTL.
func (o *OneTimeCode) Expired(now time.Time) bool {
	return o.ExpiresAt.Before(now)
}
