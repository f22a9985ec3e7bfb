package tabular

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"godrsa/domain/analysis"
)

// WriteResultJSON renders a result as indented JSON
func WriteResultJSON(w io.Writer, result *analysis.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding analysis %s: %w", result.ID, err)
	}
	return nil
}

// SaveResultJSON writes a result to a file, creating or truncating it
func SaveResultJSON(path string, result *analysis.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()
	return WriteResultJSON(file, result)
}
