package report

import (
	"encoding/json"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Document is the top-level structured output: a list of records.
type Document struct {
	Cases []Record `json:"cases" yaml:"cases" toml:"cases"`
}

// Encode writes v (a Document, a hydraulics.SweepTable, ...) to w in the
// given format: "json", "yaml" or "toml".
func Encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
