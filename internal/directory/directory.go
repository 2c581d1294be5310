// Package directory serves user lookups from an in-memory snapshot of the
// users table. The snapshot is loaded by Refresh and filtered locally, so
// typing into a search box never hits the record store.
package directory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/models"
)

// Source is where the snapshot comes from. users.Repository satisfies it.
type Source interface {
	List(ctx context.Context) ([]models.UserProfile, error)
}

// Cache is an explicit, refreshable snapshot of the user directory.
type Cache struct {
	src Source

	mu      sync.RWMutex
	users   []models.UserProfile
	byLogin map[string]models.UserProfile
	loaded  bool
}

func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

// Refresh reloads the snapshot. On error the previous snapshot is kept.
func (c *Cache) Refresh(ctx context.Context) error {
	list, err := c.src.List(ctx)
	if err != nil {
		return err
	}

	sorted := make([]models.UserProfile, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].Login < sorted[j].Login
	})

	byLogin := make(map[string]models.UserProfile, len(sorted))
	for _, u := range sorted {
		byLogin[u.Login] = u
	}

	c.mu.Lock()
	c.users = sorted
	c.byLogin = byLogin
	c.loaded = true
	c.mu.Unlock()
	return nil
}

func (c *Cache) ensure(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}
	return c.Refresh(ctx)
}

// ListAll returns every profile sorted by name ascending.
func (c *Cache) ListAll(ctx context.Context) ([]models.UserProfile, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.UserProfile, len(c.users))
	copy(out, c.users)
	return out, nil
}

// Search returns profiles whose name contains substring, ignoring case, in
// ListAll order. An empty substring matches everyone.
func (c *Cache) Search(ctx context.Context, substring string) ([]models.UserProfile, error) {
	all, err := c.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if substring == "" {
		return all, nil
	}

	needle := strings.ToLower(substring)
	out := make([]models.UserProfile, 0, len(all))
	for _, u := range all {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			out = append(out, u)
		}
	}
	return out, nil
}

// Resolve returns the profile for login or common.ErrorNotFound.
func (c *Cache) Resolve(ctx context.Context, login string) (models.UserProfile, error) {
	if err := c.ensure(ctx); err != nil {
		return models.UserProfile{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	u, ok := c.byLogin[login]
	if !ok {
		return models.UserProfile{}, common.ErrorNotFound
	}
	return u, nil
}

// Tooltip renders the profile summary for a user.
func Tooltip(u models.UserProfile) string {
	return u.Tooltip()
}
