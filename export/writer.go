// Package export serializes the generated rule catalog to its JSON file
// form and reads it back for verification.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/skincarelab/rulegen/rules"
)

// Write serializes the catalog to w as a pretty-printed JSON array.
// Non-ASCII characters are written literally and object keys follow the
// Rule field order (id, tags, text).
func Write(w io.Writer, cards []rules.Rule) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cards); err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}
	return nil
}

// WriteFile writes the catalog to path, creating the parent directory
// if needed and truncating any existing file. A failed write is not
// cleaned up; the error propagates to the caller.
func WriteFile(path string, cards []rules.Rule) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()

	return Write(file, cards)
}

// ReadFile loads a previously written catalog. Unknown object keys are
// rejected so drift in the file shape surfaces during verification.
func ReadFile(path string) ([]rules.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cards []rules.Rule
	if err := dec.Decode(&cards); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return cards, nil
}
