// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"
)

// refPattern matches cross-references like "[D] append", "[U] 12.5", or
// "[R] ranksum": a bracketed uppercase manual token followed by a dotted
// numeric path (optionally with a short trailing word) or a word phrase.
var refPattern = regexp.MustCompile(`\[([A-Z]+)\]\s+([\d.]+(?:\s+[a-zA-Z][\w\s-]*)?|[a-zA-Z][\w\s-]+)`)

// hyphenBreak matches hyphenation artifacts from line wrapping, e.g.
// "num- list", which heal to a single word.
var hyphenBreak = regexp.MustCompile(`(\w+)-\s+(\w+)`)

// ExtractReferences scans text for manual cross-references and returns
// them as "[MANUAL] locator" keys, deduplicated by exact equality with
// first occurrence winning. Locators have internal whitespace collapsed,
// broken hyphenation healed, and trailing punctuation stripped, so the
// same reference wrapped differently across lines yields one key.
func ExtractReferences(text string) []string {
	matches := refPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	var refs []string
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		locator := strings.Join(strings.Fields(m[2]), " ")
		locator = hyphenBreak.ReplaceAllString(locator, "$1$2")
		locator = strings.TrimRight(locator, ".,;:")

		key := "[" + m[1] + "] " + locator
		if !seen[key] {
			seen[key] = true
			refs = append(refs, key)
		}
	}
	return refs
}
