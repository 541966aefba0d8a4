package models

import (
	"regexp"
	"strings"
	"time"

	id "shiptrack/pkg/domain"
	dErrors "shiptrack/pkg/domain-errors"
)

// MinPassLength is the shortest raw password accepted at signup, after trimming.
const MinPassLength = 7

var emailPattern = regexp.MustCompile(`(?i)[^@ \t\r\n]+@[^@ \t\r\n]+\.[^@ \t\r\n]+`)

// User is a registered account. Pass always holds the hashed secret.
type User struct {
	id    id.UserID
	name  string
	email string
	pass  string
}

// NewUser registers a user. rawPass is only checked for length; passHash is
// what gets stored.
func NewUser(name, email, rawPass, passHash string) (*User, error) {
	if len(strings.TrimSpace(rawPass)) < MinPassLength {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid pass")
	}
	return LoadUser(id.NewUserID(), name, email, passHash)
}

// LoadUser rehydrates a user from storage.
func LoadUser(userID id.UserID, name, email, passHash string) (*User, error) {
	u := &User{id: userID, name: name, email: email, pass: passHash}
	if !u.id.Valid() ||
		strings.TrimSpace(u.name) == "" ||
		!emailPattern.MatchString(u.email) ||
		len(strings.TrimSpace(u.pass)) < MinPassLength {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid args")
	}
	return u, nil
}

func (u *User) ID() id.UserID    { return u.id }
func (u *User) Name() string     { return u.name }
func (u *User) Email() string    { return u.email }
func (u *User) PassHash() string { return u.pass }

// Payload is the identity carried inside an access token.
type Payload struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// Token is an issued access token.
type Token struct {
	Token string `json:"token"`
}
