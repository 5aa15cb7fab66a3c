package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(New("disk full"), ExitSystem),
			want: "disk full",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	inner := New("inner")
	err := NewUserError(inner, "try again")

	require.True(t, stderrors.Is(err, inner))

	var exitErr *ExitError
	require.True(t, stderrors.As(err, &exitErr))
	assert.Equal(t, ExitUser, exitErr.Code)
	assert.Equal(t, "try again", exitErr.Suggestion)
}

func TestNewSystemError(t *testing.T) {
	err := NewSystemError(New("permission denied"), "check file permissions")
	assert.Equal(t, ExitSystem, err.Code)
	assert.Equal(t, "permission denied", err.Error())
}

func TestWrapPreservesSentinel(t *testing.T) {
	sentinel := New("not found")
	wrapped := Wrapf(Wrap(sentinel, "loading"), "outer %s", "context")
	assert.True(t, Is(wrapped, sentinel))
}
