package payload

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a request document comes from.
type Source struct {
	// Name is used in error messages to identify the document.
	Name string
	// Value is an inline document provided via configuration or flags.
	Value string
	// Path points to a file containing the document. When set it takes
	// precedence over Value.
	Path string
}

// Load returns the raw document from the provided source. When Path is set
// it takes precedence over Value. The returned document is always trimmed.
// An error is returned when neither Path nor Value contain a usable
// document.
func Load(src Source) ([]byte, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "request"
	}

	path := strings.TrimSpace(src.Path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s from file %q: %w", name, path, err)
		}
		src.Value = string(data)
	}

	doc := strings.TrimSpace(src.Value)
	if doc == "" {
		if path != "" {
			return nil, fmt.Errorf("%s file %q is empty", name, path)
		}
		return nil, fmt.Errorf("%s is not provided", name)
	}

	return []byte(doc), nil
}
