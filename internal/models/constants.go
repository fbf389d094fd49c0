package models

// DefaultStorageKey is the well-known key the ledger snapshot is stored under.
const DefaultStorageKey = "transactions"

// File permissions
const (
	PermissionDataFile   = 0600
	PermissionDirectory  = 0750
	PermissionExportFile = 0644
)
