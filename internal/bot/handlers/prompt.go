package handlers

import (
	"strings"
)

// enhanceSuffix is appended to prompts when the enhancer is on.
const enhanceSuffix = " ultra detailed, sharp focus, high quality, 4k, masterpiece, best quality, photorealistic"

// enhancePrompt appends the quality suffix unless the prompt already reads
// like an enhanced one.
func enhancePrompt(prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return prompt
	}

	low := strings.ToLower(prompt)
	if strings.Contains(low, "masterpiece") || strings.Contains(low, "ultra detailed") {
		return prompt
	}
	return prompt + enhanceSuffix
}

// trimPrompt trims whitespace and caps the prompt at max runes.
func trimPrompt(prompt string, max int) string {
	prompt = strings.TrimSpace(prompt)
	if max <= 0 {
		return prompt
	}

	runes := []rune(prompt)
	if len(runes) <= max {
		return prompt
	}
	return string(runes[:max])
}
