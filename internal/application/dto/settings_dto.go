package dto

import "github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"

// SettingsResponse is the output DTO for application settings.
type SettingsResponse struct {
	DatasetVersion string `json:"dataset_version"`
	AppVersion     string `json:"app_version"`
}

func SettingsFromModel(s model.Settings) SettingsResponse {
	return SettingsResponse{
		DatasetVersion: s.DatasetVersion.String(),
		AppVersion:     s.AppVersion,
	}
}

// ResetDemoDataRequest selects the dataset to load. Empty keeps the current one.
type ResetDemoDataRequest struct {
	DatasetVersion string `json:"dataset_version"`
}

// ResetDemoDataResponse reports the dataset that was loaded.
type ResetDemoDataResponse struct {
	DatasetVersion string `json:"dataset_version"`
	CompanyCount   int    `json:"company_count"`
}

// InitializeDataResponse reports whether a first-run seed happened.
type InitializeDataResponse struct {
	DatasetVersion string `json:"dataset_version"`
	Seeded         bool   `json:"seeded"`
}
