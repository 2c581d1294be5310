package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sharenodes/internal/artifacts"
	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/host"
	"github.com/dmitrijs2005/sharenodes/internal/logging"
	"github.com/dmitrijs2005/sharenodes/internal/models"
	"github.com/dmitrijs2005/sharenodes/internal/recency"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/transfers"
)

type InboxService interface {
	ListInbox(ctx context.Context, login string) ([]models.InboxItem, error)
	ResolveArtifactPath(rec models.TransferRecord) string
	Paste(ctx context.Context, rec models.TransferRecord) error
}

type inboxService struct {
	transfers transfers.Repository
	directory Resolver
	host      host.Host
	locator   ArtifactLocator
	mirror    Mirror
	logger    logging.Logger

	now func() time.Time
}

// NewInboxService wires the inbox flow. mirror may be nil.
func NewInboxService(repo transfers.Repository, dir Resolver, h host.Host, locator ArtifactLocator,
	mirror Mirror, logger logging.Logger) InboxService {
	return &inboxService{
		transfers: repo,
		directory: dir,
		host:      h,
		locator:   locator,
		mirror:    mirror,
		logger:    logger,
		now:       time.Now,
	}
}

// ListInbox returns the records addressed to login, newest first, joined with
// their sender's profile and an age label computed against a single "now".
// A sender missing from the directory is replaced by a placeholder and the
// item is flagged; other lookup errors abort the listing.
func (s *inboxService) ListInbox(ctx context.Context, login string) ([]models.InboxItem, error) {
	records, err := s.transfers.ListByDestination(ctx, login)
	if err != nil {
		return nil, err
	}

	now := s.now()
	items := make([]models.InboxItem, 0, len(records))

	for _, rec := range records {
		item := models.InboxItem{Record: rec, Recency: recency.Since(now, rec.SubmittedAt)}

		sender, err := s.directory.Resolve(ctx, rec.SenderLogin)
		switch {
		case err == nil:
			item.Sender = sender
		case errors.Is(err, common.ErrorNotFound):
			s.logger.Warn(ctx, common.ErrDanglingReference.Error(),
				"sender", rec.SenderLogin, "artifact_id", rec.ArtifactID)
			item.Sender = models.UserProfile{Login: rec.SenderLogin, Name: common.UnknownSenderName}
			item.SenderMissing = true
		default:
			return nil, fmt.Errorf("resolve sender %s: %w", rec.SenderLogin, err)
		}

		items = append(items, item)
	}

	s.logger.Debug(ctx, "inbox listed", "login", login, "records", len(items))
	return items, nil
}

// ResolveArtifactPath maps a record to its artifact file. It does not check
// that the file exists.
func (s *inboxService) ResolveArtifactPath(rec models.TransferRecord) string {
	return s.locator.Path(rec.ArtifactID)
}

// Paste imports the record's artifact into the host, fetching it from the
// mirror first when one is configured.
func (s *inboxService) Paste(ctx context.Context, rec models.TransferRecord) error {
	if err := artifacts.Validate(rec.ArtifactID); err != nil {
		return fmt.Errorf("%w: %w", common.ErrImportFailed, err)
	}

	if s.mirror != nil {
		if err := s.mirror.Fetch(ctx, rec.ArtifactID); err != nil {
			return fmt.Errorf("%w: fetch: %w", common.ErrImportFailed, err)
		}
	}

	path := s.ResolveArtifactPath(rec)
	if err := s.host.Import(ctx, path); err != nil {
		return fmt.Errorf("%w: %w", common.ErrImportFailed, err)
	}

	s.logger.Info(ctx, "clipboard pasted", "artifact_id", rec.ArtifactID, "sender", rec.SenderLogin)
	return nil
}
