// Package domain contains entity without logic, just meta-data
package domain

import (
	"errors"

	"github.com/google/uuid"
)

const MaxUsernameLen = 36

var (
	ErrUsernameTooLong = errors.New("username too long")
	ErrUsernameEmpty   = errors.New("username empty")
	ErrBadGender       = errors.New("unknown gender")
	ErrBadInterest     = errors.New("unknown interest")
)

type UserID string

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Interest is who the user wants to be paired with.
// "any" and "both" are wildcards; the client offers both labels
// but they mean the same thing.
type Interest string

const (
	InterestMale   Interest = "male"
	InterestFemale Interest = "female"
	InterestAny    Interest = "any"
	InterestBoth   Interest = "both"
)

type User struct {
	ID       UserID   `json:"id"`
	Username string   `json:"username"`
	Gender   Gender   `json:"gender"`
	Interest Interest `json:"interest"`
}

// NewUser is a tiny helper to avoid ad-hoc struct literals in adapters.
func NewUser(username string, gender Gender, interest Interest) (*User, error) {
	u := &User{ID: UserID(uuid.NewString())}
	if err := u.SetProfile(username, gender, interest); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) SetProfile(username string, gender Gender, interest Interest) error {
	if len(username) == 0 {
		return ErrUsernameEmpty
	}
	if len(username) > MaxUsernameLen {
		return ErrUsernameTooLong
	}
	switch gender {
	case GenderMale, GenderFemale:
	default:
		return ErrBadGender
	}
	switch interest {
	case InterestMale, InterestFemale, InterestAny, InterestBoth:
	default:
		return ErrBadInterest
	}
	u.Username = username
	u.Gender = gender
	u.Interest = interest
	return nil
}

// Accepts reports whether this interest admits a peer of the given gender.
func (i Interest) Accepts(g Gender) bool {
	switch i {
	case InterestAny, InterestBoth:
		return true
	default:
		return Gender(i) == g
	}
}

// Compatible is the pairing rule: each side's interest must accept the
// other's gender. Not symmetric by construction, so both directions are
// checked here.
func Compatible(a, b *User) bool {
	return a.Interest.Accepts(b.Gender) && b.Interest.Accepts(a.Gender)
}
