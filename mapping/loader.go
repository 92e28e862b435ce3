package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile is the YAML shape of a site-specific alias override:
//
//	aliases:
//	  period: ["Period", "Dates", "When"]
//
// An override replaces the whole alias list for that field; fields not
// mentioned keep their defaults.
type overrideFile struct {
	Aliases map[string][]string `yaml:"aliases"`
}

// Load reads an alias override file and merges it over the defaults.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alias file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Table, error) {
	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing alias YAML: %w", err)
	}

	merged := make(map[Field][]string, len(defaults))
	for f, names := range defaults {
		merged[f] = names
	}
	for name, aliases := range file.Aliases {
		f := Field(name)
		if _, known := defaults[f]; !known {
			return nil, fmt.Errorf("unknown logical field %q", name)
		}
		if len(aliases) == 0 {
			return nil, fmt.Errorf("field %q has an empty alias list", name)
		}
		merged[f] = aliases
	}
	return &Table{aliases: merged}, nil
}
