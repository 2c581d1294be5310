package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/sharenodes/internal/directory"
	"github.com/dmitrijs2005/sharenodes/internal/host"
	"github.com/dmitrijs2005/sharenodes/internal/logging"
	"github.com/dmitrijs2005/sharenodes/internal/models"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/transfers"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/users"
	"github.com/dmitrijs2005/sharenodes/internal/storage"
	"github.com/dmitrijs2005/sharenodes/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendThenPaste_SQLite(t *testing.T) {
	ctx := context.Background()
	db := testdb.SQLite(t)

	userRepo := users.NewSQLiteRepository(db)
	for _, u := range []models.UserProfile{
		{Login: "jdoe", Name: "John Doe", Email: "john.doe@studio", Age: 33},
		{Login: "asmith", Name: "Anna Smith", Email: "anna.smith@studio", Age: 29},
	} {
		u := u
		require.NoError(t, userRepo.Create(ctx, &u))
	}
	transferRepo := transfers.NewSQLiteRepository(db)

	work := t.TempDir()
	local := storage.NewLocal(filepath.Join(work, "clipboards"), "")
	require.NoError(t, local.EnsureRoot())

	script := filepath.Join(work, "sel.nk")
	require.NoError(t, os.WriteFile(script, []byte("Transform { translate {10 0} }"), 0o600))

	senderHost := host.NewFileHost("", nil)
	require.NoError(t, senderHost.Select(script))

	send := NewSendService("jdoe", transferRepo, senderHost, local, nil, nil, logging.Discard())
	res, err := send.Send(ctx, []string{"asmith"}, "translate fix")
	require.NoError(t, err)

	var out bytes.Buffer
	inbox := NewInboxService(transferRepo, directory.NewCache(userRepo), host.NewFileHost("", &out), local, nil, logging.Discard())

	items, err := inbox.ListInbox(ctx, "asmith")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "John Doe", items[0].Sender.Name)
	assert.Equal(t, res.ArtifactID, items[0].Record.ArtifactID)
	assert.Equal(t, "translate fix", items[0].Record.Note)
	assert.Equal(t, "A few seconds ago", items[0].Recency)

	require.NoError(t, inbox.Paste(ctx, items[0].Record))
	assert.Equal(t, "Transform { translate {10 0} }", out.String())

	empty, err := inbox.ListInbox(ctx, "jdoe")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
