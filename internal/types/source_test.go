package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	internal, err := ParseSource("internal")
	require.NoError(t, err)
	assert.True(t, internal.Internal())
	assert.Equal(t, "internal", internal.Provider())

	mealdb, err := ParseSource("mealdb")
	require.NoError(t, err)
	assert.False(t, mealdb.Internal())
	assert.Equal(t, "mealdb", mealdb.Provider())
}

func TestParseSourceRejectsUnknownProviders(t *testing.T) {
	for _, tag := range []string{"", "spoonacular", "INTERNAL", "MealDB"} {
		_, err := ParseSource(tag)
		assert.ErrorIs(t, err, ErrValidation, "tag %q", tag)
	}
}
