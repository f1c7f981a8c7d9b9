package valueobject

import "fmt"

// DatasetVersion selects which demo company dataset is loaded.
type DatasetVersion string

const (
	DatasetA DatasetVersion = "A"
	DatasetB DatasetVersion = "B"
)

// DatasetVersionFromString parses a dataset version.
func DatasetVersionFromString(s string) (DatasetVersion, error) {
	v := DatasetVersion(s)
	if !v.Valid() {
		return "", fmt.Errorf("invalid dataset version: %q", s)
	}
	return v, nil
}

func (v DatasetVersion) Valid() bool {
	return v == DatasetA || v == DatasetB
}

func (v DatasetVersion) String() string {
	return string(v)
}
