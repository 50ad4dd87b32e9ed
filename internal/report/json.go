package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON stores any report value as indented JSON.
func WriteJSON(r any, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
