package perrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LoadError(t *testing.T) {
	assert := assert.New(t)

	cause := errors.New("unexpected EOF")
	err := &LoadError{Reason: "read input", Cause: cause}

	assert.Contains(err.Error(), "read input")
	assert.Contains(err.Error(), "unexpected EOF")
	assert.ErrorIs(err, cause)
}

func Test_ConflictError(t *testing.T) {
	err := &ConflictError{State: 4, Terminal: "PLUS", First: "shift 7", Second: "reduce E -> T"}
	assert.Contains(t, err.Error(), "state 4")
	assert.Contains(t, err.Error(), "PLUS")
}
