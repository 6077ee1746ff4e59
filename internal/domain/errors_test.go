package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("job not found")))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("insert: %w", Conflict("duplicate"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("signature is invalid")
	err := Wrap(KindAuthentication, "Token is invalid", cause)

	assert.True(t, Is(err, KindAuthentication))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Token is invalid: signature is invalid", err.Error())
}
