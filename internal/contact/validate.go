// Package contact implements the Contact.bat window: a small form whose
// submissions are kept in a SQLite inbox.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrEmailInvalid    = errors.New("email address looks invalid")
	ErrMessageRequired = errors.New("message is required")
	ErrMessageTooLong  = errors.New("message is too long")
	ErrRobot           = errors.New("please confirm you're not a robot")
)

// Validate checks a submission against the form rules. Fields are
// expected to be trimmed already.
func Validate(m Message, limit int, human bool) error {
	switch {
	case m.Name == "":
		return ErrNameRequired
	case m.Email == "":
		return ErrEmailRequired
	case m.Body == "":
		return ErrMessageRequired
	}
	if addr, err := mail.ParseAddress(m.Email); err != nil || addr.Address != m.Email || !strings.Contains(addr.Address, ".") {
		return ErrEmailInvalid
	}
	if limit > 0 {
		if n := utf8.RuneCountInString(m.Body); n > limit {
			return fmt.Errorf("%w: %d of %d characters", ErrMessageTooLong, n, limit)
		}
	}
	if !human {
		return ErrRobot
	}
	return nil
}
