package domain

import "github.com/google/uuid"

// TermKind says which query strategy a lookup term maps to.
type TermKind int

const (
	// ByID means the term is an opaque product identifier.
	ByID TermKind = iota
	// BySlugOrTitle means the term is a human-readable slug or title.
	BySlugOrTitle
)

// Term is a classified lookup key. Exactly one of ID or Text is meaningful,
// selected by Kind.
type Term struct {
	Kind TermKind
	ID   uuid.UUID
	Text string
}

// ResolveTerm classifies a raw lookup term once, before any store access.
// A term is ByID iff it parses as a UUID; everything else is BySlugOrTitle,
// so a slug that merely resembles an identifier never reaches the id path.
func ResolveTerm(raw string) Term {
	if id, err := uuid.Parse(raw); err == nil {
		return Term{Kind: ByID, ID: id}
	}
	return Term{Kind: BySlugOrTitle, Text: raw}
}
