package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

// FileInventory reads the app snapshot from a JSON file produced by the
// host application's inventory and risk-assessment pipeline.
type FileInventory struct {
	path string
}

// NewFileInventory creates an inventory backed by the given snapshot file.
func NewFileInventory(path string) *FileInventory {
	return &FileInventory{path: path}
}

// ListApps loads and decodes the snapshot. The records are returned
// as-is; missing optional fields stay nil and are defaulted downstream.
func (f *FileInventory) ListApps(ctx context.Context) ([]domain.AppRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app snapshot: %w", err)
	}

	var apps []domain.AppRecord
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("failed to decode app snapshot: %w", err)
	}
	return apps, nil
}
