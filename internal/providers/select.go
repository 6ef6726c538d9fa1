package providers

import (
	"strconv"
	"strings"

	"github.com/antzucaro/matchr"
)

// suggestThreshold is the Jaro-Winkler score a known name needs before it
// is offered as a correction.
const suggestThreshold = 0.85

// Filter narrows a species list the same way the CLI flags do: a single
// name (or 1-based index) wins over a range, which wins over a list.
func Filter(all []string, name, rng, list string) []string {
	if name != "" {
		byName := FilterByName(all, name)
		if len(byName) > 0 {
			return byName
		}

		if idx, err := strconv.Atoi(name); err == nil {
			if idx > 0 && idx <= len(all) {
				return []string{all[idx-1]}
			}
		}

		// unknown names are still scraped; the page decides
		return []string{strings.ToLower(strings.TrimSpace(name))}
	}

	if rng != "" {
		return FilterRange(all, rng)
	}
	if list != "" {
		return FilterList(all, list)
	}

	return all
}

func FilterByName(all []string, name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))

	out := []string{}
	for _, s := range all {
		if s == name {
			out = append(out, s)
		}
	}

	return out
}

func FilterRange(all []string, rng string) []string {
	parts := strings.Split(rng, "-")
	if len(parts) != 2 {
		return nil
	}

	start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))

	if err1 != nil || err2 != nil {
		return nil
	}
	if start <= 0 || end <= 0 || start > end || end > len(all) {
		return nil
	}

	return all[start-1 : end]
}

func FilterList(all []string, list string) []string {
	var out []string
	parts := strings.SplitSeq(list, ",")

	for p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		idx, err := strconv.Atoi(p)
		if err != nil {
			out = append(out, FilterByName(all, p)...)
			continue
		}
		if idx <= 0 || idx > len(all) {
			continue
		}

		out = append(out, all[idx-1])
	}

	return out
}

// Suggest returns the known species closest to name, or "" when nothing
// is similar enough.
func Suggest(all []string, name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	best, bestScore := "", suggestThreshold
	for _, s := range all {
		if s == name {
			return ""
		}
		if score := matchr.JaroWinkler(name, s, false); score >= bestScore {
			best, bestScore = s, score
		}
	}

	return best
}
