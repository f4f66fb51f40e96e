package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	for _, name := range []string{"", "default", "dark", "light"} {
		assert.NoError(t, Apply(name), name)
	}
	assert.ErrorContains(t, Apply("neon"), `unknown theme "neon"`)
}

func TestMessageStyleByStatus(t *testing.T) {
	assert.Equal(t, ColorGreen, MessageStyle("ok").GetForeground())
	assert.Equal(t, ColorYellow, MessageStyle("not found").GetForeground())
	assert.Equal(t, ColorRed, MessageStyle("storage error").GetForeground())
}
