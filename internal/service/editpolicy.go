package service

import "github.com/recipedex/backend/internal/types"

// CanEdit reports whether a recipe may be mutated. The source tag is the
// single source of truth for editability; no other field may be used to
// infer it. The HTTP layer consults this same predicate, so the server
// decision and the UI affordance can never disagree.
func CanEdit(r types.Recipe) bool {
	return CanEditSource(r.Source)
}

// CanEditSource is the predicate over a bare source tag, for the write
// path where no recipe has been loaded yet. The switch is exhaustive
// over known providers so a new provider value cannot default to
// editable.
func CanEditSource(source string) bool {
	switch source {
	case types.SourceInternal:
		return true
	case types.SourceMealDB:
		return false
	default:
		// Unknown providers are external by definition.
		return false
	}
}
