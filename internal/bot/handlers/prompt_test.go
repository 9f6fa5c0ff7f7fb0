package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnhancePrompt(t *testing.T) {
	out := enhancePrompt("a red fox in snow")
	assert.True(t, strings.HasPrefix(out, "a red fox in snow"))
	assert.Contains(t, out, "masterpiece")

	// prompts that already carry quality tags stay untouched
	assert.Equal(t, "portrait, Masterpiece", enhancePrompt("portrait, Masterpiece"))
	assert.Equal(t, "city, ULTRA DETAILED", enhancePrompt("city, ULTRA DETAILED"))

	assert.Equal(t, "", enhancePrompt("   "))
}

func TestTrimPrompt(t *testing.T) {
	assert.Equal(t, "short", trimPrompt("  short  ", 380))
	assert.Equal(t, "abc", trimPrompt("abcdef", 3))
	assert.Equal(t, "unbounded", trimPrompt("unbounded", 0))

	// cap counts runes, not bytes
	assert.Equal(t, "ягода", trimPrompt("ягодами", 5))
}
