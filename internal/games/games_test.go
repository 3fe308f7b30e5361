package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhishingLevelsConsistent(t *testing.T) {
	levels := PhishingLevels()
	require.NotEmpty(t, levels)

	seen := make(map[int]bool)
	for _, level := range levels {
		assert.False(t, seen[level.ID], "duplicate level id %d", level.ID)
		seen[level.ID] = true

		assert.NotEmpty(t, level.Title, "level %d", level.ID)
		assert.NotEmpty(t, level.Message, "level %d", level.ID)
		require.NotEmpty(t, level.Question.Choices, "level %d", level.ID)
		assert.GreaterOrEqual(t, level.Question.Correct, 0, "level %d", level.ID)
		assert.Less(t, level.Question.Correct, len(level.Question.Choices), "level %d", level.ID)
	}
}

func TestPhishingLevelByID(t *testing.T) {
	level, ok := PhishingLevelByID(1)
	require.True(t, ok)
	assert.Equal(t, 1, level.ID)
	assert.Equal(t, "PayPal Security Alert", level.Title)

	_, ok = PhishingLevelByID(999)
	assert.False(t, ok)

	_, ok = PhishingLevelByID(0)
	assert.False(t, ok)
}

func TestPasswordLevelsConsistent(t *testing.T) {
	levels := PasswordLevels()
	require.NotEmpty(t, levels)

	seen := make(map[int]bool)
	for _, level := range levels {
		assert.False(t, seen[level.ID], "duplicate level id %d", level.ID)
		seen[level.ID] = true
		assert.NotEmpty(t, level.Title, "level %d", level.ID)
	}
}

func TestSQLLevelsConsistent(t *testing.T) {
	levels := SQLLevels()
	require.NotEmpty(t, levels)

	for _, level := range levels {
		require.NotEmpty(t, level.Code, "level %d", level.ID)

		if level.VulnerableLine == -1 {
			for i, line := range level.Code {
				assert.False(t, line.Vulnerable, "level %d line %d flagged in secure sample", level.ID, i)
			}
			continue
		}

		require.GreaterOrEqual(t, level.VulnerableLine, 0, "level %d", level.ID)
		require.Less(t, level.VulnerableLine, len(level.Code), "level %d", level.ID)
		assert.True(t, level.Code[level.VulnerableLine].Vulnerable, "level %d", level.ID)
	}
}
