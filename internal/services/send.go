package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sharenodes/internal/artifacts"
	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/host"
	"github.com/dmitrijs2005/sharenodes/internal/logging"
	"github.com/dmitrijs2005/sharenodes/internal/models"
	"github.com/dmitrijs2005/sharenodes/internal/notify"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/transfers"
)

// SendResult describes a completed or partially completed send.
type SendResult struct {
	ArtifactID  string
	SubmittedAt time.Time
	// Delivered lists recipients whose record was written, in write order.
	Delivered []string
	// NotifyErrors holds notification failures. They never fail a send.
	NotifyErrors []error
}

type SendService interface {
	Send(ctx context.Context, recipients []string, note string) (*SendResult, error)
}

type sendService struct {
	sender    string
	transfers transfers.Repository
	host      host.Host
	locator   ArtifactLocator
	mirror    Mirror
	notifier  notify.Notifier
	logger    logging.Logger

	// storeTimeout bounds each record write; zero leaves only ctx.
	storeTimeout time.Duration

	now   func() time.Time
	newID func() string
}

// SendOption customizes a SendService.
type SendOption func(*sendService)

// WithStoreTimeout gives every record write its own deadline of d.
func WithStoreTimeout(d time.Duration) SendOption {
	return func(s *sendService) { s.storeTimeout = d }
}

// NewSendService wires a send flow for sender. mirror may be nil; a nil
// notifier disables notifications.
func NewSendService(sender string, repo transfers.Repository, h host.Host, locator ArtifactLocator,
	mirror Mirror, notifier notify.Notifier, logger logging.Logger, opts ...SendOption) SendService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	s := &sendService{
		sender:    sender,
		transfers: repo,
		host:      h,
		locator:   locator,
		mirror:    mirror,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
		newID:     artifacts.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send exports the host selection once and writes one transfer record per
// distinct recipient, all sharing one artifact id and timestamp.
//
// With no recipients it fails with common.ErrNoRecipients before touching
// anything. Records are written independently: if a write fails the send
// stops, the error is returned together with the result listing recipients
// already delivered, and those records stay in place.
func (s *sendService) Send(ctx context.Context, recipients []string, note string) (*SendResult, error) {
	logins := distinct(recipients)
	if len(logins) == 0 {
		return nil, common.ErrNoRecipients
	}
	if !s.host.HasSelection() {
		return nil, common.ErrNothingSelected
	}

	id := s.newID()
	if err := s.host.Export(ctx, s.locator.Path(id)); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrExportFailed, err)
	}
	if s.mirror != nil {
		if err := s.mirror.Upload(ctx, id); err != nil {
			return nil, fmt.Errorf("%w: upload: %w", common.ErrExportFailed, err)
		}
	}

	res := &SendResult{ArtifactID: id, SubmittedAt: s.now().UTC()}

	for _, login := range logins {
		rec := &models.TransferRecord{
			SenderLogin:      s.sender,
			DestinationLogin: login,
			SubmittedAt:      res.SubmittedAt,
			ArtifactID:       id,
			Note:             note,
		}
		if err := s.create(ctx, rec); err != nil {
			s.logger.Error(ctx, "send aborted", "artifact_id", id, "recipient", login,
				"delivered", len(res.Delivered), "error", err)
			return res, fmt.Errorf("record for %s: %w", login, err)
		}
		res.Delivered = append(res.Delivered, login)
	}

	for _, login := range logins {
		ev := notify.Event{
			SenderLogin:      s.sender,
			DestinationLogin: login,
			ArtifactID:       id,
			SubmittedAt:      res.SubmittedAt,
			Note:             note,
		}
		if err := s.notifier.Notify(ctx, ev); err != nil {
			s.logger.Warn(ctx, "notification failed", "recipient", login, "error", err)
			res.NotifyErrors = append(res.NotifyErrors, err)
		}
	}

	s.logger.Info(ctx, "clipboard sent", "artifact_id", id, "recipients", len(logins))
	return res, nil
}

func (s *sendService) create(ctx context.Context, rec *models.TransferRecord) error {
	if s.storeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.storeTimeout)
		defer cancel()
	}
	return s.transfers.Create(ctx, rec)
}

func distinct(logins []string) []string {
	seen := make(map[string]struct{}, len(logins))
	out := make([]string, 0, len(logins))
	for _, l := range logins {
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
