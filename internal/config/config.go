package config

import (
	"os"
	"os/user"
	"time"

	"github.com/dmitrijs2005/sharenodes/internal/common"
)

// Store backends accepted in Config.StoreDriver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Config holds runtime settings for the ShareNodes CLI.
//
// Fields:
//   - StoreDriver: record store backend, one of sqlite, postgres, mongo.
//   - DatabaseDSN: DSN for sqlite (file path) or postgres.
//   - MongoURI, MongoDatabase: connection for the mongo backend.
//   - StorageRoot: shared directory holding exported artifacts.
//   - ArtifactExt: artifact file extension, ".nk" by default.
//   - CurrentUser: login used as sender and inbox owner.
//   - S3*: optional object storage mirror of StorageRoot.
//   - NATSURL: optional notification server; empty disables notifications.
//   - StoreTimeout: upper bound for a single record store call. A send
//     bounds each of its record writes separately.
type Config struct {
	StoreDriver   string
	DatabaseDSN   string
	MongoURI      string
	MongoDatabase string

	StorageRoot string
	ArtifactExt string
	CurrentUser string

	S3Enabled      bool
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string

	NATSURL      string
	StoreTimeout time.Duration
}

// currentOSUser is a seam for tests.
var currentOSUser = func() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreDriver = DriverSQLite
	c.DatabaseDSN = "sharenodes.db"
	c.MongoURI = "mongodb://localhost:27017"
	c.MongoDatabase = "sharenodes"
	c.StorageRoot = "./clipboards"
	c.ArtifactExt = common.DefaultArtifactExt
	c.CurrentUser = currentOSUser()
	c.S3Region = "us-east-1"
	c.StoreTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), JSON (if present) and
// command-line flags (if present). Later sources take precedence over earlier
// ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	loadDotEnv(dotEnvPath())
	parseEnv(cfg, os.LookupEnv)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
