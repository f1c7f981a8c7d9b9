// Package seed loads the built-in demo company datasets.
package seed

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

//go:embed datasets/*.yaml
var datasetFS embed.FS

type dataset struct {
	Version   string          `yaml:"version"`
	Companies []model.Company `yaml:"companies"`
}

// Datasets implements port.DatasetSource from the embedded YAML files.
type Datasets struct{}

func NewDatasets() *Datasets {
	return &Datasets{}
}

// Companies loads and validates the dataset for version.
func (d *Datasets) Companies(version valueobject.DatasetVersion) ([]model.Company, error) {
	if !version.Valid() {
		return nil, fmt.Errorf("seed: unknown dataset %q", version)
	}

	filename := "datasets/" + lower(version) + ".yaml"
	data, err := datasetFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", filename, err)
	}

	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("seed: parse %s: %w", filename, err)
	}
	if ds.Version != version.String() {
		return nil, fmt.Errorf("seed: %s declares version %q", filename, ds.Version)
	}

	seen := make(map[string]bool, len(ds.Companies))
	for _, c := range ds.Companies {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("seed: %s: %w", filename, err)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("seed: %s: duplicate company id %s", filename, c.ID)
		}
		seen[c.ID] = true
	}

	return ds.Companies, nil
}

func lower(v valueobject.DatasetVersion) string {
	switch v {
	case valueobject.DatasetA:
		return "a"
	case valueobject.DatasetB:
		return "b"
	default:
		return ""
	}
}
