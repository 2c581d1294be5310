package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/sharenodes/internal/config"
	"github.com/dmitrijs2005/sharenodes/internal/directory"
	"github.com/dmitrijs2005/sharenodes/internal/host"
	"github.com/dmitrijs2005/sharenodes/internal/logging"
	"github.com/dmitrijs2005/sharenodes/internal/models"
	"github.com/dmitrijs2005/sharenodes/internal/notify"
	"github.com/dmitrijs2005/sharenodes/internal/services"
	"github.com/dmitrijs2005/sharenodes/internal/storage"
	"github.com/dmitrijs2005/sharenodes/internal/store"
)

type App struct {
	config *config.Config
	logger logging.Logger

	store     *store.Store
	directory *directory.Cache
	host      *host.FileHost
	notifier  notify.Notifier

	sendService  services.SendService
	inboxService services.InboxService

	staged []string
	note   string
	// inbox is the last history listing; show and paste address its rows.
	inbox []models.InboxItem

	out io.Writer
}

// NewApp opens the record store, prepares the storage root and wires the
// flows for the configured user.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	st, err := store.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	local := storage.NewLocal(c.StorageRoot, c.ArtifactExt)
	if err := local.EnsureRoot(); err != nil {
		_ = st.Close(ctx)
		return nil, err
	}

	var mirror services.Mirror
	if c.S3Enabled {
		m, err := storage.NewS3Mirror(ctx, storage.S3Options{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
		}, local)
		if err != nil {
			_ = st.Close(ctx)
			return nil, fmt.Errorf("s3 mirror: %w", err)
		}
		mirror = m
	}

	var notifier notify.Notifier = notify.Nop{}
	if c.NATSURL != "" {
		n, err := notify.ConnectNATS(c.NATSURL)
		if err != nil {
			// Records remain the source of truth; run without notifications.
			logger.Warn(ctx, "notifications disabled", "error", err)
		} else {
			notifier = n
		}
	}

	out := io.Writer(os.Stdout)
	h := host.NewFileHost("", out)
	dir := directory.NewCache(st.Users)
	sendOpts := []services.SendOption{services.WithStoreTimeout(c.StoreTimeout)}

	a := &App{
		config:       c,
		logger:       logger,
		store:        st,
		directory:    dir,
		host:         h,
		notifier:     notifier,
		sendService:  services.NewSendService(c.CurrentUser, st.Transfers, h, local, mirror, notifier, logger, sendOpts...),
		inboxService: services.NewInboxService(st.Transfers, dir, h, local, mirror, logger),
		out:          out,
	}
	return a, nil
}

// Run loads the directory, starts watching for incoming clipboards when
// notifications are on, and runs the REPL on stdin until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	if err := a.Refresh(ctx); err != nil {
		a.logger.Error(ctx, "directory load failed", "error", err)
	}
	if _, err := a.directory.Resolve(ctx, a.config.CurrentUser); err != nil {
		a.logger.Warn(ctx, "current user is not in the directory", "login", a.config.CurrentUser)
	}

	if n, ok := a.notifier.(*notify.NATSNotifier); ok {
		if _, err := n.Watch(a.config.CurrentUser, a.announce); err != nil {
			a.logger.Warn(ctx, "cannot watch for clipboards", "error", err)
		}
	}

	interactive := isTerminal(int(os.Stdin.Fd()))
	if interactive {
		printlnFn("ShareNodes CLI (type 'help' for commands)")
	}

	runREPL(ctx, a, func() string {
		if !interactive {
			return ""
		}
		return a.prompt()
	}, bufio.NewScanner(os.Stdin))
}

func (a *App) prompt() string {
	return fmt.Sprintf("sharenodes (%s, %d staged)> ", a.config.CurrentUser, len(a.staged))
}

func (a *App) announce(ev notify.Event) {
	printlnFn(fmt.Sprintf("New clipboard from %s. Type 'history' to see it.", ev.SenderLogin))
}

func (a *App) close(ctx context.Context) {
	a.notifier.Close()
	if err := a.store.Close(ctx); err != nil {
		a.logger.Error(ctx, "store close failed", "error", err)
	}
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.StoreTimeout)
}
