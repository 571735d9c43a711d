// Package platform resolves free-text platform names from catalog action
// steps to verified websites of Israeli banks, brokers and funds.
package platform

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"moneyharbor/internal/textutil"
)

// Category groups platforms by the kind of institution.
type Category string

const (
	CategoryBank       Category = "bank"
	CategoryBroker     Category = "broker"
	CategoryCrypto     Category = "crypto"
	CategoryP2P        Category = "p2p"
	CategoryPension    Category = "pension"
	CategoryRealEstate Category = "realestate"
	CategoryOther      Category = "other"
)

// Platform is a verified institution with its public website.
type Platform struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Category Category `json:"category"`
}

// MinSimilarity is the lowest edit-distance similarity accepted as a match.
const MinSimilarity = 0.75

// minSubstringKey keeps very short aliases like "ig", and very short
// queries, out of substring matching.
const minSubstringKey = 3

type alias struct {
	key      string
	platform *Platform
}

// Directory is an ordered alias table. Lookups try aliases in insertion order.
type Directory struct {
	aliases   []alias
	platforms []*Platform
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{}
}

// Add registers p under each alias. Aliases are folded before storage.
func (d *Directory) Add(p Platform, aliases ...string) {
	stored := &p
	d.platforms = append(d.platforms, stored)
	for _, a := range aliases {
		d.aliases = append(d.aliases, alias{key: textutil.Fold(a), platform: stored})
	}
}

// Platforms returns every registered platform in insertion order.
func (d *Directory) Platforms() []Platform {
	out := make([]Platform, len(d.platforms))
	for i, p := range d.platforms {
		out[i] = *p
	}
	return out
}

var fillerWords = []string{"bank ", "investments", "insurance", "house ", "בנק ", "השקעות", "ביטוח", "בית "}

func clean(name string) string {
	for _, w := range fillerWords {
		name = strings.ReplaceAll(name, w, "")
	}
	return strings.TrimSpace(name)
}

// Lookup finds the platform best matching name. It tries, in order, an
// exact alias match, a match after dropping filler words such as "bank",
// a substring match in either direction, and finally the closest alias by
// edit distance if it is at least MinSimilarity similar.
func (d *Directory) Lookup(name string) (Platform, bool) {
	normalized := textutil.Fold(name)
	if normalized == "" {
		return Platform{}, false
	}
	if p := d.exact(normalized); p != nil {
		return *p, true
	}

	cleaned := clean(normalized)
	if cleaned == "" {
		return Platform{}, false
	}
	if p := d.exact(cleaned); p != nil {
		return *p, true
	}

	if utf8.RuneCountInString(cleaned) >= minSubstringKey {
		for _, a := range d.aliases {
			if utf8.RuneCountInString(a.key) < minSubstringKey {
				continue
			}
			if strings.Contains(cleaned, a.key) || strings.Contains(a.key, cleaned) {
				return *a.platform, true
			}
		}
	}

	var best *Platform
	bestScore := 0.0
	for _, a := range d.aliases {
		if s := similarity(cleaned, a.key); s > bestScore {
			best, bestScore = a.platform, s
		}
	}
	if best != nil && bestScore >= MinSimilarity {
		return *best, true
	}
	return Platform{}, false
}

// URL returns the website for name, or "" when there is no verified match.
func (d *Directory) URL(name string) string {
	p, ok := d.Lookup(name)
	if !ok {
		return ""
	}
	return p.URL
}

func (d *Directory) exact(key string) *Platform {
	for _, a := range d.aliases {
		if a.key == key {
			return a.platform
		}
	}
	return nil
}

func similarity(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
