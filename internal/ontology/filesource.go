package ontology

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/thapanirajan/ResumeEZ-backend/internal/schemas"
)

// FileSource loads the catalog from a JSON seed file. It lets the CLI and
// tests run without a database; the file shape is the Catalog type itself.
type FileSource struct {
	Path string
}

// Catalog reads, schema-checks and decodes the seed file.
func (f FileSource) Catalog(_ context.Context) (*Catalog, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ontology file %s: %w", f.Path, err)
	}

	if err := schemas.ValidateCatalog(data); err != nil {
		return nil, fmt.Errorf("invalid ontology file %s: %w", f.Path, err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse ontology file %s: %w", f.Path, err)
	}
	return &cat, nil
}
