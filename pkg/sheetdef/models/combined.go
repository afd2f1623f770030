package models

// CombinedSchema aggregates every sheet definition under one version tag.
type CombinedSchema struct {
	// Version is the game build version the definitions were generated for.
	Version string `json:"version"`
	// Sheets lists sheet definitions ordered by their source file names.
	Sheets []SheetSchema `json:"sheets"`
}
