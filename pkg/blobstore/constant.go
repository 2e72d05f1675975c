package blobstore

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"

	// MaxBlobSize caps a single saved blob.
	MaxBlobSize = 10 * 1024 * 1024

	maxNameLength = 255
)
