package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by parseEnv.
const EnvPrefix = "SHARENODES_"

// dotEnvPath returns the .env file to load, SHARENODES_ENV_FILE or ".env".
func dotEnvPath() string {
	if p, ok := os.LookupEnv(EnvPrefix + "ENV_FILE"); ok && p != "" {
		return p
	}
	return ".env"
}

// loadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error; a
// malformed one panics.
func loadDotEnv(path string) {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return
	}
	panic(err)
}

// parseEnv overlays cfg with SHARENODES_* variables found via lookup.
//
// Supported variables:
//
//	SHARENODES_STORE_DRIVER     sqlite | postgres | mongo
//	SHARENODES_DATABASE_DSN
//	SHARENODES_MONGO_URI
//	SHARENODES_MONGO_DATABASE
//	SHARENODES_STORAGE_ROOT
//	SHARENODES_ARTIFACT_EXT
//	SHARENODES_USER
//	SHARENODES_S3_ENABLED       strconv.ParseBool syntax
//	SHARENODES_S3_BUCKET
//	SHARENODES_S3_REGION
//	SHARENODES_S3_ENDPOINT
//	SHARENODES_S3_ACCESS_KEY
//	SHARENODES_S3_SECRET_KEY
//	SHARENODES_NATS_URL
//	SHARENODES_STORE_TIMEOUT    time.ParseDuration syntax
//
// Panics on values that cannot be parsed.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	str("STORE_DRIVER", &cfg.StoreDriver)
	str("DATABASE_DSN", &cfg.DatabaseDSN)
	str("MONGO_URI", &cfg.MongoURI)
	str("MONGO_DATABASE", &cfg.MongoDatabase)
	str("STORAGE_ROOT", &cfg.StorageRoot)
	str("ARTIFACT_EXT", &cfg.ArtifactExt)
	str("USER", &cfg.CurrentUser)
	str("S3_BUCKET", &cfg.S3Bucket)
	str("S3_REGION", &cfg.S3Region)
	str("S3_ENDPOINT", &cfg.S3BaseEndpoint)
	str("S3_ACCESS_KEY", &cfg.S3AccessKey)
	str("S3_SECRET_KEY", &cfg.S3SecretKey)
	str("NATS_URL", &cfg.NATSURL)

	if v, ok := lookup(EnvPrefix + "S3_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		cfg.S3Enabled = b
	}

	if v, ok := lookup(EnvPrefix + "STORE_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.StoreTimeout = d
	}
}
