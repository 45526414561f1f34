package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabels(t *testing.T) {
	defer SetLabels("")

	SetLabels("MAPPER; REDUCER;;")
	assert.True(t, IsLabelSet(MAPPER))
	assert.True(t, IsLabelSet(REDUCER))
	assert.False(t, IsLabelSet(WRITER))
	assert.True(t, IsLabelSet(ALWAYS), "ALWAYS is always on")

	SetLabels("")
	assert.False(t, IsLabelSet(MAPPER))
}
