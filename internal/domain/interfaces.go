package domain

// CollectionStore loads and persists a whole record collection from and
// to durable flat storage. Load returns the full collection in file
// order; Save overwrites the prior content in full.
type CollectionStore[T any] interface {
	Load() ([]T, error)
	Save(records []T) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetDataDir() string
	GetUsersFilePath() string
	GetDocumentsFilePath() string
	GetLogLevel() string
}
