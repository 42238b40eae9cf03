package pettypes

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetType_States(t *testing.T) {
	n := New("iguana")
	assert.True(t, n.IsNew())
	_, ok := n.ID()
	assert.False(t, ok)

	var zero PetType
	assert.True(t, zero.IsNew())

	p := Restore(7, "hamster")
	assert.False(t, p.IsNew())
	id, ok := p.ID()
	require.True(t, ok)
	assert.Equal(t, 7, id)
}

func TestPetType_AssignIDOnlyOnce(t *testing.T) {
	pt := New("iguana")
	require.NoError(t, pt.AssignID(5))

	err := pt.AssignID(6)
	assert.True(t, errors.Is(err, ErrAlreadyPersisted))

	id, _ := pt.ID()
	assert.Equal(t, 5, id)
}

func TestErrors_MatchSentinels(t *testing.T) {
	nf := NewNotFoundError(Kind, "dragon")
	assert.True(t, errors.Is(nf, ErrNotFound))
	assert.EqualError(t, nf, "PetType not found: dragon")

	wrapped := errors.Wrap(nf, "lookup")
	var target *NotFoundError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "dragon", target.Key)

	inUse := &InUseError{ID: 2, Dependents: 3}
	assert.True(t, errors.Is(inUse, ErrInUse))
	assert.False(t, errors.Is(inUse, ErrNotFound))
	assert.EqualError(t, inUse, "pet type 2 in use by 3 pet(s)")
}
