// Package catalog holds the static reference data of watch mode: the calendar
// event catalog and the persona registry. Both are loaded once at process
// start and are read-only afterwards.
package catalog

import (
	"embed"
	"fmt"
	"os"
)

//go:embed data/events.yaml data/personas.yaml
var embedded embed.FS

// readSource returns the file at path, or the embedded default when path is empty.
func readSource(path, embeddedName string) ([]byte, error) {
	if path == "" {
		b, err := embedded.ReadFile("data/" + embeddedName)
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", embeddedName, err)
		}
		return b, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}
