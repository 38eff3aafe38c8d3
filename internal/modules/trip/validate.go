package trip

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Indian mobile numbers: ten digits starting 6-9.
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// Validate returns ErrIncompleteCustomer naming the first failing field.
func (c Customer) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: name is required", ErrIncompleteCustomer)
	case strings.TrimSpace(c.Phone) == "" || !phonePattern.MatchString(c.Phone):
		return fmt.Errorf("%w: phone must be a 10-digit mobile number", ErrIncompleteCustomer)
	case strings.TrimSpace(c.Email) == "" || !emailPattern.MatchString(c.Email):
		return fmt.Errorf("%w: email is invalid", ErrIncompleteCustomer)
	}
	return nil
}

func (c Customer) Complete() bool {
	return c.Validate() == nil
}

// ReadyForEnquiry checks everything an enquiry needs before it is sent.
func (s State) ReadyForEnquiry() error {
	if !s.HasEndpoints() {
		return ErrMissingEndpoints
	}
	return s.Customer().Validate()
}
