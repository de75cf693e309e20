// Package content loads the static portfolio content rendered on the page.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/renz/portfolio/internal/schemas"
	"github.com/renz/portfolio/internal/types"
)

//go:embed default.json
var defaultContent []byte

//go:embed portfolio.schema.json
var portfolioSchema []byte

// Default returns the built-in portfolio content.
func Default() (*types.Portfolio, error) {
	return parse("default.json", defaultContent)
}

// Load reads content from path, or returns the built-in content when path is empty.
// The file is validated against the portfolio schema before use.
func Load(path string) (*types.Portfolio, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	return parse(path, data)
}

// Schema returns the JSON Schema content documents must satisfy.
func Schema() []byte {
	out := make([]byte, len(portfolioSchema))
	copy(out, portfolioSchema)
	return out
}

func parse(name string, data []byte) (*types.Portfolio, error) {
	if err := schemas.ValidateBytes("portfolio.schema.json", portfolioSchema, data); err != nil {
		return nil, fmt.Errorf("content %s is invalid: %w", name, err)
	}

	var p types.Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse content %s: %w", name, err)
	}
	return &p, nil
}
