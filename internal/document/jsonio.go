package document

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes the document to a JSON file.
func (d *StrokeDocument) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stroke document: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadStrokeDocument reads a stroke document from a JSON file.
func LoadStrokeDocument(path string) (*StrokeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d StrokeDocument
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal stroke document: %w", err)
	}
	return &d, nil
}
