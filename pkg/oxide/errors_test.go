package oxide

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTag_Family(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FamilyResult, TagErr.Family())
	assert.Equal(t, FamilyOption, TagNone.Family())
	assert.Equal(t, FamilyEither, TagLeft.Family())
	assert.Zero(t, TagUnset.Family())
	assert.Equal(t, "Unknown", TagUnset.Family().String())
}

func TestMatchError_Message(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, &MatchError{Tag: TagErr}, "no match handler for Err of a Result")
	assert.EqualError(t, &MatchError{Tag: TagNone}, "no match handler for None of an Option")
	assert.EqualError(t, &MatchError{Tag: TagRight}, "no match handler for Right of an Either")
	assert.EqualError(t, &MatchError{Tag: TagUnset}, "match on an unset container")
	assert.ErrorIs(t, &MatchError{Tag: TagOk}, ErrOxide)
}
