package entity

import (
	"strings"
	"unicode"
)

// User is a workshop login. Exactly one bootstrap administrator account
// exists after initialization; every other account is a regular technician.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// TechnicianName derives the display name shown on repair records from
// the user's email local part ("sang@robomate.co.nz" -> "Sang"). It is
// set once when a record is created and never recomputed.
func (u User) TechnicianName() string {
	local, _, _ := strings.Cut(u.Email, "@")
	if local == "" {
		return ""
	}
	runes := []rune(local)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
