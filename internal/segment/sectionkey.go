package segment

import (
	"fmt"
	"regexp"
	"strings"
)

const maxSectionKeyLength = 30

var (
	keyStripRe    = regexp.MustCompile(`[^a-z0-9\s]+`)
	keyCollapseRe = regexp.MustCompile(`\s+`)
)

// SlugifyTitle derives a section key from a heading title: lowercase, strip
// characters outside [a-z0-9] and whitespace, collapse whitespace runs to a
// single underscore, truncate to 30 characters. Returns "" when nothing
// survives; callers fall back to a positional key.
func SlugifyTitle(title string) string {
	key := strings.ToLower(title)
	key = keyStripRe.ReplaceAllString(key, "")
	key = strings.TrimSpace(key)
	key = keyCollapseRe.ReplaceAllString(key, "_")
	if len(key) > maxSectionKeyLength {
		key = key[:maxSectionKeyLength]
	}
	return key
}

// KeyAllocator tracks section keys issued for a single document so duplicate
// titles receive stable, order-dependent numeric suffixes instead of
// colliding ("goal", "goal_2", ...).
type KeyAllocator struct {
	issued map[string]struct{}
}

// NewKeyAllocator returns an empty allocator for one document's keys.
func NewKeyAllocator() *KeyAllocator {
	return &KeyAllocator{issued: map[string]struct{}{}}
}

// Issue returns a document-unique key for the slug, substituting a
// positional fallback when the slug is empty. index is the zero-based count
// of sections flushed so far. Every candidate, suffixed or not, is checked
// against the issued set so a suffixed key can never collide with a section
// whose title already slugified to that exact key.
func (k *KeyAllocator) Issue(slug string, index int) string {
	if slug == "" {
		slug = fmt.Sprintf("section_%d", index)
	}

	key := slug
	for n := 2; ; n++ {
		if _, taken := k.issued[key]; !taken {
			break
		}
		key = fmt.Sprintf("%s_%d", slug, n)
	}
	k.issued[key] = struct{}{}
	return key
}
