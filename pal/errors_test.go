package pal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastErrorRoundTrip(t *testing.T) {
	ClearLastError()
	_, ok := LastError()
	assert.False(t, ok)

	setLastError(KindNotFound, "missing %s", "widget.png")

	err, ok := LastError()
	require.True(t, ok)
	assert.Equal(t, KindNotFound, err.Kind)
	assert.Contains(t, err.Error(), "widget.png")
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "fatal-bootstrap", KindFatalBootstrap.String())
	assert.Equal(t, "none", KindNone.String())
}
