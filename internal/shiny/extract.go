package shiny

import (
	"strings"

	"github.com/brogergvhs/shinydex/internal/providers"
)

const DefaultImageHost = "https://img.pokemondb.net"

var excludedTitles = []string{"Event", "Totem"}

// Qualifies runs the filter chain every image goes through before any
// species-specific labeling.
func Qualifies(img providers.Image, host string) bool {
	for _, t := range excludedTitles {
		if strings.Contains(img.Title, t) {
			return false
		}
	}

	if img.Src == "" || !strings.Contains(img.Src, "shiny") {
		return false
	}

	return strings.HasPrefix(img.Src, host)
}

// Extract labels the qualifying images of one species page, in document
// order.
func Extract(species string, images []providers.Image, host string) []Record {
	if host == "" {
		host = DefaultImageHost
	}

	lb := LabelerFor(species)

	var out []Record
	for _, img := range images {
		if !Qualifies(img, host) {
			continue
		}

		rec, ok, stop := lb.Label(species, img)
		if ok {
			out = append(out, rec)
		}
		if stop {
			break
		}
	}

	return out
}

// Dedupe keeps the first occurrence of every line.
func Dedupe(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))

	for _, l := range lines {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}

	return out
}
