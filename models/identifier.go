package models

import (
	"errors"
	"regexp"
	"strings"
)

// IdentifierKind tells whether a login identifier is an email address or a
// mobile number.
type IdentifierKind int

const (
	IdentifierEmail IdentifierKind = iota
	IdentifierMobile
)

// Identifier is a login identifier classified exactly once at the boundary.
// Downstream code switches on Kind instead of re-inspecting the string.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

// ErrInvalidIdentifier is returned when an identifier matches neither the
// email nor the mobile number format.
var ErrInvalidIdentifier = errors.New("identifier is neither an email nor a mobile number")

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// ParseIdentifier classifies a raw login identifier.
func ParseIdentifier(raw string) (Identifier, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case emailPattern.MatchString(raw):
		return Identifier{Kind: IdentifierEmail, Value: raw}, nil
	case mobilePattern.MatchString(raw):
		return Identifier{Kind: IdentifierMobile, Value: raw}, nil
	}
	return Identifier{}, ErrInvalidIdentifier
}
