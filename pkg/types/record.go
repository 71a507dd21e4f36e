// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// NoDescription is the sentinel used when extraction yields no description
// text for a code. Records never carry an empty description.
const NoDescription = "No description available"

// Category is the human-readable grouping derived from a code's numeric range.
type Category string

const (
	CategoryGeneral     Category = "General"
	CategorySyntax      Category = "Syntax/Command"
	CategoryStoredRes   Category = "Previously stored result"
	CategoryStatistical Category = "Statistical problems"
	CategoryMatrix      Category = "Matrix manipulation"
	CategoryFileIO      Category = "File I/O"
	CategoryOS          Category = "Operating system"
	CategoryMemory      Category = "Memory/Resources"
	CategoryLimits      Category = "System limits"
	CategoryNonError    Category = "Non-errors (continuation)"
	CategoryMataRuntime Category = "Mata runtime"
	CategoryClassSystem Category = "Class system"
	CategoryPython      Category = "Python runtime"
	CategorySystem      Category = "System failure"
	CategoryOther       Category = "Other"
)

// categoryRanges maps closed code intervals to categories, in evaluation
// order. Intervals do not overlap; codes outside every interval are "Other".
var categoryRanges = []struct {
	lo, hi int
	cat    Category
}{
	{1, 99, CategoryGeneral},
	{100, 199, CategorySyntax},
	{300, 399, CategoryStoredRes},
	{400, 499, CategoryStatistical},
	{500, 599, CategoryMatrix},
	{600, 699, CategoryFileIO},
	{700, 799, CategoryOS},
	{900, 999, CategoryMemory},
	{1000, 1999, CategoryLimits},
	{2000, 2999, CategoryNonError},
	{3000, 3999, CategoryMataRuntime},
	{4000, 4999, CategoryClassSystem},
	{7100, 7199, CategoryPython},
	{9000, 9999, CategorySystem},
}

// CategoryFor maps a code to its category by fixed range rules. Every
// integer maps to exactly one category.
func CategoryFor(code int) Category {
	for _, r := range categoryRanges {
		if code >= r.lo && code <= r.hi {
			return r.cat
		}
	}
	return CategoryOther
}

// ErrorCode is one diagnostic code entry recovered from the reference
// document. Records are normalized on construction and never mutated.
type ErrorCode struct {
	// Code is the numeric identifier, unique within the final set.
	Code int `json:"code" yaml:"code"`

	// Name is a short whitespace-normalized label.
	Name string `json:"name" yaml:"name"`

	// Description is the normalized free-text explanation; NoDescription
	// when extraction found nothing.
	Description string `json:"description" yaml:"description"`

	// Category is derived from Code via CategoryFor.
	Category Category `json:"category" yaml:"category"`

	// References lists cross-references ("[MANUAL] section"), deduplicated
	// in first-occurrence order.
	References []string `json:"references,omitempty" yaml:"references,omitempty"`

	// SourceVersion tags the source document revision the record came from.
	SourceVersion string `json:"version" yaml:"version"`
}

// NewErrorCode builds a normalized record: name and description have
// whitespace collapsed, an empty description becomes NoDescription, and
// the category is derived from the code.
func NewErrorCode(code int, name, description string, references []string, version string) ErrorCode {
	desc := CollapseWhitespace(description)
	if desc == "" {
		desc = NoDescription
	}
	return ErrorCode{
		Code:          code,
		Name:          CollapseWhitespace(name),
		Description:   desc,
		Category:      CategoryFor(code),
		References:    references,
		SourceVersion: version,
	}
}

// CollapseWhitespace reduces all runs of whitespace (including newlines)
// to single spaces and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
