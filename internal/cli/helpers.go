package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thoas/go-funk"
)

const (
	tableFormat = "table"
	jsonFormat  = "json"
	yamlFormat  = "yaml"
	csvFormat   = "csv"
	htmlFormat  = "html"
	xlsxFormat  = "xlsx"
)

var (
	legalOutputTypes = []string{tableFormat, jsonFormat, yamlFormat, csvFormat, htmlFormat, xlsxFormat}
	// binary formats are never written to a terminal
	fileOnlyOutputTypes = []string{xlsxFormat}
)

func validateOutput(output, outFile string) error {
	if !funk.Contains(legalOutputTypes, output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	if outFile == "" && funk.Contains(fileOnlyOutputTypes, output) {
		return fmt.Errorf("output format %s requires --out", output)
	}
	return nil
}

// openOutput returns the file at path, or def when path is empty. The returned
// close function is always safe to call.
func openOutput(path string, def io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return def, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}
