package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_StartsAtHome(t *testing.T) {
	assert.Equal(t, Home, NewTracker().Active())
	assert.Equal(t, Home, NewTrackerAt(Section("nope")).Active())
	assert.Equal(t, Skills, NewTrackerAt(Skills).Active())
}

func TestTracker_Observe(t *testing.T) {
	tr := NewTracker()

	changed := tr.Observe(Visibility{Projects: true})
	assert.True(t, changed)
	assert.Equal(t, Projects, tr.Active())

	changed = tr.Observe(Visibility{Projects: true, About: true})
	assert.False(t, changed)
	assert.Equal(t, Projects, tr.Active())

	// Nothing in view: keep the last highlight.
	changed = tr.Observe(Visibility{})
	assert.False(t, changed)
	assert.Equal(t, Projects, tr.Active())

	changed = tr.Observe(Visibility{Contact: true})
	assert.True(t, changed)
	assert.Equal(t, Contact, tr.Active())
}

func TestTracker_Select(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.Select(About))
	assert.Equal(t, About, tr.Active())

	err := tr.Select(Section("blog"))
	require.Error(t, err)
	assert.Equal(t, About, tr.Active())
}
