package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/config"
	"github.com/dmitrijs2005/sharenodes/internal/directory"
	"github.com/dmitrijs2005/sharenodes/internal/host"
	"github.com/dmitrijs2005/sharenodes/internal/logging"
	"github.com/dmitrijs2005/sharenodes/internal/models"
	"github.com/dmitrijs2005/sharenodes/internal/notify"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/transfers"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/users"
	"github.com/dmitrijs2005/sharenodes/internal/services"
	"github.com/dmitrijs2005/sharenodes/internal/storage"
	"github.com/dmitrijs2005/sharenodes/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*App
	work  string
	paste *bytes.Buffer
}

// newTestApp wires an App for login over a shared in-memory store. Apps made
// from the same db see each other's sends.
func newTestApp(t *testing.T, login string, userRepo users.Repository, transferRepo transfers.Repository, root string) *testApp {
	t.Helper()
	logger := logging.Discard()
	cfg := &config.Config{CurrentUser: login, StoreTimeout: 5 * time.Second}

	local := storage.NewLocal(root, "")
	require.NoError(t, local.EnsureRoot())

	var buf bytes.Buffer
	h := host.NewFileHost("", &buf)
	dir := directory.NewCache(userRepo)

	a := &App{
		config:       cfg,
		logger:       logger,
		directory:    dir,
		host:         h,
		notifier:     notify.Nop{},
		sendService:  services.NewSendService(login, transferRepo, h, local, nil, nil, logger),
		inboxService: services.NewInboxService(transferRepo, dir, h, local, nil, logger),
		out:          &buf,
	}
	return &testApp{App: a, work: t.TempDir(), paste: &buf}
}

func seedUsers(t *testing.T, repo users.Repository) {
	t.Helper()
	for _, u := range []models.UserProfile{
		{Login: "jdoe", Name: "John Doe", Email: "john.doe@studio", Age: 33},
		{Login: "asmith", Name: "Anna Smith", Email: "anna.smith@studio", Age: 29},
		{Login: "bking", Name: "Bob King", Email: "bob.king@studio", Age: 25},
	} {
		u := u
		require.NoError(t, repo.Create(context.Background(), &u))
	}
}

func TestApp_SendAndPasteRoundTrip(t *testing.T) {
	out := captureOutput(t)
	ctx := context.Background()

	db := testdb.SQLite(t)
	userRepo := users.NewSQLiteRepository(db)
	transferRepo := transfers.NewSQLiteRepository(db)
	seedUsers(t, userRepo)
	root := filepath.Join(t.TempDir(), "clipboards")

	sender := newTestApp(t, "jdoe", userRepo, transferRepo, root)
	receiver := newTestApp(t, "asmith", userRepo, transferRepo, root)

	script := filepath.Join(sender.work, "sel.nk")
	require.NoError(t, os.WriteFile(script, []byte("Merge2 { operation over }"), 0o600))

	assert.ErrorIs(t, sender.Send(ctx), common.ErrNoRecipients)

	require.NoError(t, sender.Stage(ctx, "asmith"))
	require.NoError(t, sender.Stage(ctx, "asmith"))
	assert.ErrorIs(t, sender.Stage(ctx, "ghost"), common.ErrorNotFound)
	assert.Equal(t, []string{"asmith"}, sender.staged)

	assert.ErrorIs(t, sender.Send(ctx), common.ErrNothingSelected)

	require.NoError(t, sender.Select(script))
	require.NoError(t, sender.SetNote("merge order fix\nsee sh020 too"))
	require.NoError(t, sender.Send(ctx))
	assert.Empty(t, sender.staged)
	assert.Empty(t, sender.note)
	assert.Contains(t, strings.Join(*out, "\n"), "Sent to asmith.")

	*out = nil
	require.NoError(t, receiver.History(ctx))
	table := strings.Join(*out, "\n")
	assert.Contains(t, table, "John Doe")
	assert.Contains(t, table, "A few seconds ago")
	assert.Contains(t, table, "merge order fix …")

	*out = nil
	require.NoError(t, receiver.Show(1))
	assert.Contains(t, strings.Join(*out, "\n"), "see sh020 too")

	require.NoError(t, receiver.Paste(ctx, 1))
	assert.Equal(t, "Merge2 { operation over }", receiver.paste.String())

	assert.ErrorIs(t, receiver.Paste(ctx, 2), common.ErrorNotFound)
}

func TestApp_RowRequiresHistory(t *testing.T) {
	captureOutput(t)
	db := testdb.SQLite(t)
	a := newTestApp(t, "jdoe", users.NewSQLiteRepository(db), transfers.NewSQLiteRepository(db), t.TempDir())

	assert.ErrorContains(t, a.Show(1), "run 'history' first")
}

func TestApp_UsersAndWhois(t *testing.T) {
	out := captureOutput(t)
	ctx := context.Background()
	db := testdb.SQLite(t)
	userRepo := users.NewSQLiteRepository(db)
	seedUsers(t, userRepo)
	a := newTestApp(t, "jdoe", userRepo, transfers.NewSQLiteRepository(db), t.TempDir())

	require.NoError(t, a.Stage(ctx, "bking"))
	require.NoError(t, a.Users(ctx, "KING"))
	listing := strings.Join(*out, "\n")
	assert.Contains(t, listing, "*bking")
	assert.NotContains(t, listing, "asmith")

	*out = nil
	require.NoError(t, a.Whois(ctx, "asmith"))
	assert.Equal(t, []string{"Anna Smith", "Email: anna.smith@studio\nLogin: asmith\nAge: 29"}, *out)

	require.NoError(t, a.Unstage("bking"))
	assert.Error(t, a.Unstage("bking"))
}
