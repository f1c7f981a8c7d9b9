package model

import "github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"

const AppVersion = "1.0.0"

// Settings holds application-wide preferences persisted next to the data.
type Settings struct {
	DatasetVersion valueobject.DatasetVersion `json:"datasetVersion"`
	AppVersion     string                     `json:"appVersion"`
}

// DefaultSettings is returned when nothing has been stored yet.
func DefaultSettings() Settings {
	return Settings{
		DatasetVersion: valueobject.DatasetA,
		AppVersion:     AppVersion,
	}
}
