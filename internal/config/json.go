package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/sharenodes/internal/flagx"
	"github.com/dmitrijs2005/sharenodes/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero", so a partial file only overrides
// what it names.
type JsonConfig struct {
	StoreDriver    *string         `json:"store_driver"`
	DatabaseDSN    *string         `json:"database_dsn"`
	MongoURI       *string         `json:"mongo_uri"`
	MongoDatabase  *string         `json:"mongo_database"`
	StorageRoot    *string         `json:"storage_root"`
	ArtifactExt    *string         `json:"artifact_ext"`
	CurrentUser    *string         `json:"user"`
	S3Enabled      *bool           `json:"s3_enabled"`
	S3Bucket       *string         `json:"s3_bucket"`
	S3Region       *string         `json:"s3_region"`
	S3BaseEndpoint *string         `json:"s3_endpoint"`
	S3AccessKey    *string         `json:"s3_access_key"`
	S3SecretKey    *string         `json:"s3_secret_key"`
	NATSURL        *string         `json:"nats_url"`
	StoreTimeout   *timex.Duration `json:"store_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file given with
// -c or -config. Without either flag it does nothing. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.StoreDriver, jc.StoreDriver)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.MongoURI, jc.MongoURI)
	setString(&cfg.MongoDatabase, jc.MongoDatabase)
	setString(&cfg.StorageRoot, jc.StorageRoot)
	setString(&cfg.ArtifactExt, jc.ArtifactExt)
	setString(&cfg.CurrentUser, jc.CurrentUser)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.NATSURL, jc.NATSURL)
	if jc.S3Enabled != nil {
		cfg.S3Enabled = *jc.S3Enabled
	}
	if jc.StoreTimeout != nil {
		cfg.StoreTimeout = time.Duration(jc.StoreTimeout.Duration)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
