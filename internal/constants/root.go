package constants

const (
	AppName            = "myday"
	DefaultKeyringUser = "gemini-api-key"
	DefaultDataDir     = "~/.config/myday"
	Version            = "v0.1.0"

	// DateFormat is the canonical date key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Slot keys. The entries key matches the browser build so exported data imports as-is.
	EntriesSlotKey  = "gemini-journal-entries"
	SettingsSlotKey = "journal-settings"

	// Storage backends
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"

	SQLiteFileName = "myday.db"
	DiskvDirName   = "slots"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "myday-"

	// Logging
	LogDirName  = "logs"
	LogFileName = "myday.log"
)
