package blobstore

import "fmt"

// Config selects and configures a Gateway driver.
type Config struct {
	Driver     string // "file" or "sqlite"
	DataDir    string // file driver: directory holding one file per blob
	SQLitePath string // sqlite driver: database file
}

// Validate fills defaults and checks the driver settings.
func (c *Config) Validate() error {
	if c.Driver == "" {
		c.Driver = DriverFile
	}

	switch c.Driver {
	case DriverFile:
		if c.DataDir == "" {
			return fmt.Errorf("blobstore: data dir is required for driver %q", c.Driver)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("blobstore: sqlite path is required for driver %q", c.Driver)
		}
	default:
		return fmt.Errorf("blobstore: unknown driver %q", c.Driver)
	}
	return nil
}
