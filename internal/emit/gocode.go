// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/errdex/pkg/types"
)

// WriteGoTable emits a Go source file defining the record set as static
// data plus two lookup helpers, for compilation into a downstream project.
func WriteGoTable(path string, records []types.ErrorCode, cfg types.ExtractionConfig) error {
	pkg := cfg.GenPackage
	if pkg == "" {
		pkg = "codes"
	}

	var b strings.Builder

	b.WriteString("// Code generated by errdex. DO NOT EDIT.\n")
	fmt.Fprintf(&b, "// Source: %s, pages %s\n", cfg.Source.Source, cfg.Source.Pages)
	fmt.Fprintf(&b, "// Generation date: %s\n", cfg.Source.ExtractionDate)
	fmt.Fprintf(&b, "// Total codes: %d\n\n", len(records))
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	b.WriteString("// OfficialCode is one documented error code.\n")
	b.WriteString("type OfficialCode struct {\n")
	b.WriteString("\tCode        uint32\n")
	b.WriteString("\tName        string\n")
	b.WriteString("\tCategory    string\n")
	b.WriteString("\tDescription string\n")
	b.WriteString("}\n\n")

	b.WriteString("// OfficialCodes lists every documented error code in ascending order.\n")
	b.WriteString("var OfficialCodes = []OfficialCode{\n")
	for _, r := range records {
		fmt.Fprintf(&b, "\t{Code: %d, Name: %q, Category: %q, Description: %q},\n",
			r.Code, r.Name, r.Category, r.Description)
	}
	b.WriteString("}\n\n")

	b.WriteString("// LookupOfficial returns the entry for code, or nil if undocumented.\n")
	b.WriteString("func LookupOfficial(code uint32) *OfficialCode {\n")
	b.WriteString("\tfor i := range OfficialCodes {\n")
	b.WriteString("\t\tif OfficialCodes[i].Code == code {\n")
	b.WriteString("\t\t\treturn &OfficialCodes[i]\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t}\n")
	b.WriteString("\treturn nil\n")
	b.WriteString("}\n\n")

	b.WriteString("// AllCodes returns every documented code number in ascending order.\n")
	b.WriteString("func AllCodes() []uint32 {\n")
	b.WriteString("\tcodes := make([]uint32, len(OfficialCodes))\n")
	b.WriteString("\tfor i, c := range OfficialCodes {\n")
	b.WriteString("\t\tcodes[i] = c.Code\n")
	b.WriteString("\t}\n")
	b.WriteString("\treturn codes\n")
	b.WriteString("}\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
