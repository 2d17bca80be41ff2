package domain

import "time"

// SyncMetadata tracks the last successful import per provider feed
type SyncMetadata struct {
	Provider     string    `json:"provider" db:"provider"`
	LastSyncedAt time.Time `json:"last_synced_at" db:"last_synced_at"`
	RowsImported int       `json:"rows_imported" db:"rows_imported"`
	RowsRejected int       `json:"rows_rejected" db:"rows_rejected"`
	SourceFile   string    `json:"source_file,omitempty" db:"source_file"`
}
