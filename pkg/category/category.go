// Package category defines the built-in category table for subscriptions.
package category

import (
	"strings"

	"github.com/fatih/color"
)

// DefaultKey is the fallback category for unknown keys.
const DefaultKey = "general"

// Config describes how a category is labelled and rendered.
type Config struct {
	Key   string
	Label string
	Color color.Attribute
}

func builtin() []Config {
	return []Config{
		{Key: "streaming", Label: "Streaming", Color: color.FgHiMagenta},
		{Key: "music", Label: "Music", Color: color.FgHiCyan},
		{Key: "software", Label: "Software", Color: color.FgHiBlue},
		{Key: "gaming", Label: "Gaming", Color: color.FgHiGreen},
		{Key: "fitness", Label: "Fitness", Color: color.FgGreen},
		{Key: "utilities", Label: "Utilities", Color: color.FgYellow},
		{Key: "insurance", Label: "Insurance", Color: color.FgBlue},
		{Key: "education", Label: "Education", Color: color.FgCyan},
		{Key: "news", Label: "News", Color: color.FgWhite},
		{Key: DefaultKey, Label: "General", Color: color.FgHiWhite},
	}
}

// All returns the built-in category configs.
func All() []Config {
	return builtin()
}

// Lookup resolves a category key to its config. Unknown keys fall back to the
// General visual config but keep their original key so grouping stays stable.
func Lookup(key string) Config {
	k := Normalize(key)
	for _, c := range builtin() {
		if c.Key == k {
			return c
		}
	}
	fallback := Lookup(DefaultKey)
	fallback.Key = k
	fallback.Label = strings.TrimSpace(key)
	return fallback
}

// Normalize canonicalises a user-supplied category key.
func Normalize(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return DefaultKey
	}
	return k
}
