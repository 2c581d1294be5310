package services

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/models"
	"github.com/dmitrijs2005/sharenodes/internal/notify"
)

type fakeHost struct {
	selected  bool
	exportErr error
	importErr error
	exported  []string
	imported  []string
}

func (f *fakeHost) HasSelection() bool { return f.selected }

func (f *fakeHost) Export(ctx context.Context, path string) error {
	f.exported = append(f.exported, path)
	return f.exportErr
}

func (f *fakeHost) Import(ctx context.Context, path string) error {
	f.imported = append(f.imported, path)
	return f.importErr
}

type fakeTransfers struct {
	created []models.TransferRecord
	// failAt makes the n-th Create (1-based) fail with err.
	failAt  int
	err     error
	list    []models.TransferRecord
	listErr error
	ctxs    []context.Context
}

func (f *fakeTransfers) Create(ctx context.Context, rec *models.TransferRecord) error {
	f.ctxs = append(f.ctxs, ctx)
	if f.failAt > 0 && len(f.created)+1 == f.failAt {
		return f.err
	}
	f.created = append(f.created, *rec)
	return nil
}

func (f *fakeTransfers) ListByDestination(ctx context.Context, login string) ([]models.TransferRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.TransferRecord, 0)
	for _, r := range f.list {
		if r.DestinationLogin == login {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

type fakeLocator struct{ root string }

func (f fakeLocator) Path(id string) string { return filepath.Join(f.root, id+".nk") }

type fakeMirror struct {
	uploaded []string
	fetched  []string
	err      error
}

func (f *fakeMirror) Upload(ctx context.Context, id string) error {
	f.uploaded = append(f.uploaded, id)
	return f.err
}

func (f *fakeMirror) Fetch(ctx context.Context, id string) error {
	f.fetched = append(f.fetched, id)
	return f.err
}

type fakeNotifier struct {
	events []notify.Event
	err    error
}

func (f *fakeNotifier) Notify(ctx context.Context, ev notify.Event) error {
	f.events = append(f.events, ev)
	return f.err
}

func (f *fakeNotifier) Close() {}

type fakeResolver struct {
	users map[string]models.UserProfile
	err   error
}

func (f *fakeResolver) Resolve(ctx context.Context, login string) (models.UserProfile, error) {
	if f.err != nil {
		return models.UserProfile{}, f.err
	}
	u, ok := f.users[login]
	if !ok {
		return models.UserProfile{}, common.ErrorNotFound
	}
	return u, nil
}
