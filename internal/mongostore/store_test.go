package mongostore

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/sharenodes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestInboxIndex_Keys(t *testing.T) {
	idx := inboxIndex()
	assert.Equal(t, bson.D{{Key: "destination_login", Value: 1}, {Key: "submitted_at", Value: -1}}, idx.Keys)
	require.NotNil(t, idx.Options)
	assert.Equal(t, "destination_submitted_at", *idx.Options.Name)
}

func TestLoginIndex_Unique(t *testing.T) {
	idx := loginIndex()
	require.NotNil(t, idx.Options.Unique)
	assert.True(t, *idx.Options.Unique)
}

func TestInboxOptions_NewestFirstThenInsertion(t *testing.T) {
	opts := inboxOptions()
	assert.Equal(t, bson.D{{Key: "submitted_at", Value: -1}, {Key: "_id", Value: -1}}, opts.Sort)
	assert.Equal(t, bson.D{{Key: "_id", Value: 0}}, opts.Projection)
}

func TestListUsersOptions_SortedByName(t *testing.T) {
	opts := listUsersOptions()
	assert.Equal(t, bson.D{{Key: "name", Value: 1}, {Key: "login", Value: 1}}, opts.Sort)
}

func TestFilters(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "login", Value: "jdoe"}}, byLogin("jdoe"))
	assert.Equal(t, bson.D{{Key: "destination_login", Value: "asmith"}}, byDestination("asmith"))
}

func TestTransferDocument_RoundTrip(t *testing.T) {
	at := time.Date(2021, 3, 11, 9, 0, 0, 0, time.FixedZone("CET", 3600))
	rec := &models.TransferRecord{
		SenderLogin: "jdoe", DestinationLogin: "asmith", SubmittedAt: at, ArtifactID: "id-1", Note: "hi",
	}

	raw, err := bson.Marshal(transferDocument(rec))
	require.NoError(t, err)

	var back models.TransferRecord
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, "jdoe", back.SenderLogin)
	assert.Equal(t, "asmith", back.DestinationLogin)
	assert.Equal(t, "id-1", back.ArtifactID)
	assert.Equal(t, "hi", back.Note)
	assert.True(t, back.SubmittedAt.Equal(at))
}
