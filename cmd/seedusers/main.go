// Command seedusers provisions the user directory from a names file:
//
//	seedusers -f users.txt [-domain studio.example] [-drop] [store flags]
//
// Store selection uses the same configuration sources as the CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/dmitrijs2005/sharenodes/internal/config"
	"github.com/dmitrijs2005/sharenodes/internal/flagx"
	"github.com/dmitrijs2005/sharenodes/internal/logging"
	"github.com/dmitrijs2005/sharenodes/internal/provision"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/users"
	"github.com/dmitrijs2005/sharenodes/internal/store"
)

type options struct {
	namesFile string
	domain    string
	drop      bool
}

func parseOptions(args []string) (options, error) {
	o := options{domain: "example.com"}

	fs := flag.NewFlagSet("seedusers", flag.ContinueOnError)
	fs.StringVar(&o.namesFile, "f", "", "file with one full name per line")
	fs.StringVar(&o.domain, "domain", o.domain, "e-mail domain")
	fs.BoolVar(&o.drop, "drop", false, "remove existing users first")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-f", "-domain"}, "-drop")); err != nil {
		return o, err
	}
	return o, nil
}

func main() {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)
	ctx := context.Background()

	opts, err := parseOptions(os.Args[1:])
	if err != nil || opts.namesFile == "" {
		logger.Error(ctx, "usage: seedusers -f <names file> [-domain d] [-drop]", "error", err)
		os.Exit(2)
	}

	if err := run(ctx, opts, config.LoadConfig(), logger); err != nil {
		logger.Error(ctx, "seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, cfg *config.Config, logger logging.Logger) error {
	f, err := os.Open(opts.namesFile)
	if err != nil {
		return err
	}
	defer f.Close()

	names, err := provision.ReadNames(f)
	if err != nil {
		return err
	}

	st, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	var created int
	err = st.ProvisionUsers(ctx, opts.drop, func(ctx context.Context, repo users.Repository) error {
		n, err := provision.Seed(ctx, repo, names, opts.domain, rng)
		created = n
		return err
	})
	if err != nil {
		if created > 0 && st.Driver() == config.DriverMongo {
			logger.Warn(ctx, "seeding stopped, earlier users kept", "created", created, "error", err)
		}
		return err
	}

	logger.Info(ctx, "users seeded", "driver", st.Driver(), "created", created, "dropped", opts.drop)
	return nil
}
