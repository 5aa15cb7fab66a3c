package profile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdit_ChangesOnlyGivenFlags(t *testing.T) {
	setTestConfig(t)
	addProfile(t, "Skyrim", "$HOME/saves/skyrim")

	require.NoError(t, editCmd.Flags().Set("path", "$HOME/saves/skyrim-se"))

	var buf bytes.Buffer
	require.NoError(t, runEditWithWriter(&buf, editCmd, "Skyrim"))
	assert.Contains(t, buf.String(), "Updated")

	buf.Reset()
	listJSON = false
	require.NoError(t, runListWithWriter(&buf))
	out := buf.String()
	assert.Contains(t, out, "$HOME/saves/skyrim-se")
	// Name untouched.
	assert.Contains(t, out, "Skyrim")
}

func TestEdit_Unknown(t *testing.T) {
	setTestConfig(t)

	var buf bytes.Buffer
	err := runEditWithWriter(&buf, editCmd, "nope")
	assert.Error(t, err)
}
