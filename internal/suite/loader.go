package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, ok := seen[c.ID]; ok {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.Expression1 == "" || c.Expression2 == "" {
			return nil, fmt.Errorf("case %q needs both expression1 and expression2", c.ID)
		}
		if !c.Expect.Valid() {
			return nil, fmt.Errorf("case %q has invalid expect %q (want %s or %s)", c.ID, c.Expect, ExpectEquivalent, ExpectDifferent)
		}
	}

	return &s, nil
}
