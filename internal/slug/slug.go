// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from post titles.
package slug

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLen is the longest slug the schema accepts (VARCHAR(100)).
const MaxLen = 100

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, whitespace, or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespaceRun collapses a run of whitespace into a single hyphen.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// asciiFold decomposes accented characters and strips the combining marks,
// so "Café Noël" becomes "Cafe Noel" before the ASCII cleanup pass.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generate creates a URL-friendly slug from the given string. The result is
// deterministic and idempotent, never empty, and never exceeds MaxLen.
// Example: "Hello, Wörld! 2026" → "hello-world-2026"
func Generate(s string) string {
	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	if result == "" {
		return fallback(s)
	}
	return truncate(result)
}

// fallback derives a stable non-empty slug for input with no ASCII-foldable
// characters, such as an all-Cyrillic or CJK title. Hashing the input keeps
// distinct titles on distinct slugs so the uniqueness constraint still
// discriminates by title.
func fallback(s string) string {
	h := fnv.New64a()
	h.Write([]byte(s))
	return fmt.Sprintf("post-%x", h.Sum64())
}

// truncate caps the slug at MaxLen bytes, cutting back to the previous hyphen
// so the slug never ends mid-word.
func truncate(s string) string {
	if len(s) <= MaxLen {
		return s
	}
	s = s[:MaxLen]
	if i := strings.LastIndexByte(s, '-'); i > 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "-")
}
