package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/sharenodes/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   store driver: sqlite, postgres or mongo
//	-d string   database DSN (sqlite file or postgres DSN)
//	-m string   mongo URI
//	-r string   storage root for artifacts
//	-u string   current user login
//	-n string   NATS server URL
//	-t int      store timeout (in seconds); applied only when given
//	-s3         enable the S3 artifact mirror
//	-b string   S3 bucket
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-s", "-d", "-m", "-r", "-u", "-n", "-t", "-b"}, "-s3")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreDriver, "s", cfg.StoreDriver, "record store driver (sqlite, postgres, mongo)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.MongoURI, "m", cfg.MongoURI, "mongo URI")
	fs.StringVar(&cfg.StorageRoot, "r", cfg.StorageRoot, "shared artifact directory")
	fs.StringVar(&cfg.CurrentUser, "u", cfg.CurrentUser, "current user login")
	fs.StringVar(&cfg.NATSURL, "n", cfg.NATSURL, "NATS server URL")
	fs.BoolVar(&cfg.S3Enabled, "s3", cfg.S3Enabled, "mirror artifacts to S3")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	storeTimeout := fs.Int("t", int(cfg.StoreTimeout.Seconds()), "store timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.StoreTimeout = time.Duration(*storeTimeout) * time.Second
		}
	})
}
