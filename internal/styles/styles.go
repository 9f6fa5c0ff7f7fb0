// Package styles manages the image style catalog: display/slug name forms
// and a disk-cached copy of the remote style list.
package styles

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	spaceRun   = regexp.MustCompile(`\s+`)
	nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)
)

// Display converts an API style name to its display form:
// "tlingit_art" becomes "Tlingit Art".
func Display(name string) string {
	s := strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
	s = strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))

	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

// Slug converts a display style name to its API form:
// "Tlingit Art" becomes "tlingit_art".
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlugRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// FallbackStyles is served when the style API is down and no fresh cache
// exists.
func FallbackStyles() []string {
	return []string{
		"Pointillism", "Typography", "Line Art", "Caricature", "Adorable Kawaii",
		"Watercolor", "Manga", "Surreal Painting", "Pixel Art", "Sticker", "Tlingit Art",
	}
}
