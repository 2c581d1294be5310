// Package provision builds directory profiles from a plain list of full
// names, one per line, for the offline seeding tool.
package provision

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/sharenodes/internal/models"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/users"
)

const (
	minAge = 18
	maxAge = 60
)

// ReadNames returns the cleaned, non-empty names in r.
func ReadNames(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if name := Clean(sc.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	return names, nil
}

// Clean keeps printable ASCII and ASCII whitespace, then trims surrounding
// whitespace. Names exported from spreadsheets often carry BOMs and
// non-breaking spaces.
func Clean(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsPrint(r) || unicode.IsSpace(r)) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Login is the first initial followed by the last space-separated word,
// lowercased: "Anna Maria Smith" -> "asmith".
func Login(name string) string {
	words := strings.Split(name, " ")
	return strings.ToLower(name[:1] + words[len(words)-1])
}

// Email lowercases name, replaces spaces with dots and appends domain.
func Email(name, domain string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", ".") + "@" + domain
}

// Profile derives a full profile for name. Age is drawn from rng.
func Profile(name, domain string, rng *rand.Rand) models.UserProfile {
	return models.UserProfile{
		Login: Login(name),
		Name:  name,
		Email: Email(name, domain),
		Age:   minAge + rng.IntN(maxAge-minAge+1),
	}
}

// Seed creates one profile per name. Two names mapping to the same login
// abort the run, as the second insert would collide. On error the returned
// count is the number of profiles created before the failure.
func Seed(ctx context.Context, repo users.Repository, names []string, domain string, rng *rand.Rand) (int, error) {
	seen := make(map[string]string, len(names))
	created := 0
	for _, name := range names {
		p := Profile(name, domain, rng)
		if prev, ok := seen[p.Login]; ok {
			return created, fmt.Errorf("login %q derived from both %q and %q", p.Login, prev, name)
		}
		seen[p.Login] = name

		if err := repo.Create(ctx, &p); err != nil {
			return created, fmt.Errorf("create %s: %w", p.Login, err)
		}
		created++
	}
	return created, nil
}
