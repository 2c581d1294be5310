package config

import (
	"errors"
	"fmt"
)

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverSQLite, DriverPostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("store driver %q requires a database DSN", c.StoreDriver)
		}
	case DriverMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" {
			return errors.New("store driver \"mongo\" requires a mongo URI and database")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}

	if c.StorageRoot == "" {
		return errors.New("storage root must not be empty")
	}
	if c.CurrentUser == "" {
		return errors.New("current user is unknown; set SHARENODES_USER or -u")
	}
	if c.S3Enabled && c.S3Bucket == "" {
		return errors.New("S3 mirror enabled without a bucket")
	}
	if c.StoreTimeout <= 0 {
		return errors.New("store timeout must be positive")
	}
	return nil
}
