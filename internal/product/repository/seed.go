package repository

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

//go:embed seed/patterns.json
var seedPatterns []byte

// SeedRepository serves the bundled pattern list, in file order.
type SeedRepository struct {
	products []model.Product
}

// NewSeedRepository loads the patterns bundled with the binary.
func NewSeedRepository() (*SeedRepository, error) {
	return NewSeedRepositoryFromJSON(seedPatterns)
}

func NewSeedRepositoryFromJSON(data []byte) (*SeedRepository, error) {
	products := []model.Product{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&products); err != nil {
		return nil, fmt.Errorf("decode seed patterns: %w", err)
	}
	if products == nil {
		return nil, errors.New("decode seed patterns: document is null")
	}
	return &SeedRepository{products: products}, nil
}

func (r *SeedRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
