package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateSwot(t *testing.T) {
	t.Run("first access seeds one default row per quadrant", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "swot@example.com")

		swot, err := GetOrCreateSwot(user.ID)
		require.NoError(t, err)

		require.Len(t, swot.Strengths, 1)
		require.Len(t, swot.Weaknesses, 1)
		require.Len(t, swot.Opportunities, 1)
		require.Len(t, swot.Threats, 1)
		assert.Equal(t, "Default Strength", swot.Strengths[0].Description)
		assert.Equal(t, "Default Weakness", swot.Weaknesses[0].Description)
		assert.Equal(t, "Default Opportunity", swot.Opportunities[0].Description)
		assert.Equal(t, "Default Threat", swot.Threats[0].Description)
	})

	t.Run("second access returns the same analysis", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "swot@example.com")

		first, err := GetOrCreateSwot(user.ID)
		require.NoError(t, err)

		second, err := GetOrCreateSwot(user.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, second.Strengths, 1)
	})

	t.Run("analyses are per user", func(t *testing.T) {
		db := setupTestDB(t)
		a := createTestUser(t, db, "a@example.com")
		b := createTestUser(t, db, "b@example.com")

		swotA, err := GetOrCreateSwot(a.ID)
		require.NoError(t, err)
		swotB, err := GetOrCreateSwot(b.ID)
		require.NoError(t, err)
		assert.NotEqual(t, swotA.ID, swotB.ID)
	})
}
