package domain

import (
	"strings"
	"testing"
)

func TestNewUser_ValidatesProfile(t *testing.T) {
	u, err := NewUser("alice", GenderFemale, InterestAny)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected non-empty user id")
	}
	if u.Username != "alice" {
		t.Fatalf("Username = %q, want alice", u.Username)
	}
}

func TestNewUser_RejectsBadInput(t *testing.T) {
	if _, err := NewUser("", GenderMale, InterestAny); err != ErrUsernameEmpty {
		t.Fatalf("empty name err = %v, want %v", err, ErrUsernameEmpty)
	}
	if _, err := NewUser(strings.Repeat("x", MaxUsernameLen+1), GenderMale, InterestAny); err != ErrUsernameTooLong {
		t.Fatalf("long name err = %v, want %v", err, ErrUsernameTooLong)
	}
	if _, err := NewUser("bob", Gender("robot"), InterestAny); err != ErrBadGender {
		t.Fatalf("bad gender err = %v, want %v", err, ErrBadGender)
	}
	if _, err := NewUser("bob", GenderMale, Interest("nobody")); err != ErrBadInterest {
		t.Fatalf("bad interest err = %v, want %v", err, ErrBadInterest)
	}
}

func TestSetProfile_KeepsID(t *testing.T) {
	u, err := NewUser("carol", GenderFemale, InterestMale)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	id := u.ID
	if err := u.SetProfile("caroline", GenderFemale, InterestAny); err != nil {
		t.Fatalf("SetProfile: %v", err)
	}
	if u.ID != id {
		t.Fatalf("ID changed on re-profile: %q -> %q", id, u.ID)
	}
	if u.Interest != InterestAny {
		t.Fatalf("Interest = %q, want %q", u.Interest, InterestAny)
	}
}

func TestCompatible_ChecksBothDirections(t *testing.T) {
	mk := func(g Gender, i Interest) *User {
		return &User{Username: "u", Gender: g, Interest: i}
	}

	cases := []struct {
		name string
		a, b *User
		want bool
	}{
		{"both wildcards", mk(GenderMale, InterestAny), mk(GenderFemale, InterestAny), true},
		{"both label is wildcard too", mk(GenderMale, InterestBoth), mk(GenderFemale, InterestBoth), true},
		{"mutual exact match", mk(GenderMale, InterestFemale), mk(GenderFemale, InterestMale), true},
		{"one side rejects", mk(GenderFemale, InterestAny), mk(GenderMale, InterestMale), false},
		{"other side rejects", mk(GenderMale, InterestMale), mk(GenderFemale, InterestAny), false},
		{"mutual rejection", mk(GenderMale, InterestFemale), mk(GenderFemale, InterestFemale), false},
		{"same gender wildcard", mk(GenderMale, InterestAny), mk(GenderMale, InterestAny), true},
	}
	for _, tc := range cases {
		if got := Compatible(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: Compatible = %v, want %v", tc.name, got, tc.want)
		}
		// The pair check itself must be symmetric even when the
		// underlying Accepts is not.
		if got := Compatible(tc.b, tc.a); got != tc.want {
			t.Errorf("%s (reversed): Compatible = %v, want %v", tc.name, got, tc.want)
		}
	}
}
