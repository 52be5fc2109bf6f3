package config

// StorageConfig defines where the run state and optional check history live.
type StorageConfig struct {
	StateFilePath string `json:"state_file_path,omitempty" yaml:"state_file_path,omitempty"`
	// HistoryDBPath enables the sqlite check-history database when set.
	HistoryDBPath string `json:"history_db_path,omitempty" yaml:"history_db_path,omitempty"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		StateFilePath: DefaultStateFilePath,
	}
}
