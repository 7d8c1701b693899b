package types

import "fmt"

// SourceInternal is the one source value that grants edit rights. Every
// other value names an external provider and is read-only.
const SourceInternal = "internal"

// SourceMealDB identifies recipes fetched from TheMealDB.
const SourceMealDB = "mealdb"

// Source is a closed discriminator over recipe provenance. The wire
// format keeps it as a string; internally handlers switch on the variant
// so a new provider value cannot be silently mishandled.
type Source struct {
	provider string
}

// Internal reports whether the source grants edit rights.
func (s Source) Internal() bool { return s.provider == SourceInternal }

// Provider returns the provider tag ("internal", "mealdb", ...).
func (s Source) Provider() string { return s.provider }

func (s Source) String() string { return s.provider }

// ParseSource validates a source tag from the wire. Only providers this
// system knows how to reach are accepted.
func ParseSource(s string) (Source, error) {
	switch s {
	case SourceInternal, SourceMealDB:
		return Source{provider: s}, nil
	default:
		return Source{}, fmt.Errorf("%w: unknown source %q", ErrValidation, s)
	}
}
