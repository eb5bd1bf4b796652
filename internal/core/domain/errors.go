package domain

import (
	"errors"
	"fmt"
)

// ErrDocumentNotFound is returned by the document store when no document
// exists yet for the guild.
var ErrDocumentNotFound = errors.New("guild document not found")

// ErrSourceUnavailable wraps a failed roster-source fetch. A failed
// per-character detail lookup is not a source failure; it degrades to
// basic attributes instead.
var ErrSourceUnavailable = errors.New("roster source unavailable")

// ErrEmptyRoster rejects catalog additions on a document with no members.
// The catalog lives on member records, so there is nowhere to keep the
// entry until a refresh has populated the roster.
var ErrEmptyRoster = errors.New("guild roster has no members")

// GuardViolationError rejects removal of a catalog key that is still
// checked by at least one member. Nothing is mutated when it is returned.
type GuardViolationError struct {
	Category Category
	Key      string
	Member   string
}

func (e *GuardViolationError) Error() string {
	return fmt.Sprintf("cannot remove %q from %s: checked by %s", e.Key, e.Category, e.Member)
}

// NotFoundError reports a missing member, item or sub-item in a mutation.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}
