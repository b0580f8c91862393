// Package checkout builds hosted payment-link redirects for subscription tiers.
package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownTier is returned for a tier with no configured payment link.
var ErrUnknownTier = errors.New("unknown tier")

// Builder maps tiers to payment links.
type Builder struct {
	links map[string]*url.URL
}

// NewBuilder parses the tier links. Tier names are matched case-insensitively.
func NewBuilder(links map[string]string) (*Builder, error) {
	b := &Builder{links: make(map[string]*url.URL, len(links))}
	for tier, raw := range links {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing link for tier %s: %w", tier, err)
		}
		if u.Scheme != "https" && u.Scheme != "http" {
			return nil, fmt.Errorf("link for tier %s must be http(s), got %q", tier, raw)
		}
		b.links[strings.ToLower(tier)] = u
	}
	return b, nil
}

// Tiers lists the configured tiers, sorted.
func (b *Builder) Tiers() []string {
	tiers := make([]string, 0, len(b.links))
	for t := range b.links {
		tiers = append(tiers, t)
	}
	sort.Strings(tiers)
	return tiers
}

// URL returns the checkout redirect for a user. The user id is passed as
// client_reference_id so the payment can be matched back, and the email is
// prefilled when known.
func (b *Builder) URL(tier string, userID int, email string) (string, error) {
	base, ok := b.links[strings.ToLower(strings.TrimSpace(tier))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	u := *base
	q := u.Query()
	q.Set("client_reference_id", strconv.Itoa(userID))
	if email = strings.TrimSpace(email); email != "" {
		q.Set("prefilled_email", email)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
