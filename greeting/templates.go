package greeting

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTemplates reads a YAML sequence of greeting templates, e.g.
//
//	- "Rise and shine, {name}!"
//	- "Morning, {name} :)"
func LoadTemplates(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var templates []string
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := ValidateTemplates(templates); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return templates, nil
}
