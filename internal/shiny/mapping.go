package shiny

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/titanous/json5"
)

// Only HOME renders are mapped; they are the highest quality sprites.
const homeShinyPath = "/home/shiny/"

var (
	reSpaces     = regexp.MustCompile(`\s+`)
	reMiniorCore = regexp.MustCompile(`(red|orange|yellow|green|blue|indigo|violet)`)
	reSilvally   = regexp.MustCompile(`(normal|bug|dark|dragon|electric|fairy|fighting|fire|flying|ghost|grass|ground|ice|poison|psychic|rock|steel|water)`)
)

type PokedexEntry struct {
	ID   int `json:"id"`
	Name struct {
		English string `json:"english"`
	} `json:"name"`
}

// LoadPokedex reads a pokedex JSON array and indexes ids by lowercase
// English name.
func LoadPokedex(path string) (map[string]int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []PokedexEntry
	if err := json5.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("pokedex %s: %w", path, err)
	}

	out := make(map[string]int, len(entries))
	for _, e := range entries {
		out[strings.ToLower(e.Name.English)] = e.ID
	}

	return out, nil
}

// LoadMapping reads a mapping file written by an earlier run. A missing
// file yields an empty mapping.
func LoadMapping(path string) (map[string]string, error) {
	out := map[string]string{}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json5.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("existing mapping %s: %w", path, err)
	}

	return out, nil
}

type Mapping struct {
	Entries   map[string]string
	Processed int
	Unknown   []string
}

// BuildMapping keys every HOME shiny record by species id plus a form
// suffix. With a nil ids table the species identifier is the id. Entries
// already in base are kept unless a record overwrites them.
func BuildMapping(records []Record, ids map[string]int, base map[string]string) Mapping {
	m := Mapping{Entries: make(map[string]string, len(base)+len(records))}
	for k, v := range base {
		m.Entries[k] = v
	}

	processed := map[string]bool{}
	unknown := map[string]bool{}

	for _, r := range records {
		if !strings.Contains(r.URL, homeShinyPath) {
			continue
		}

		id, ok := lookupID(r, ids)
		if !ok {
			name := strings.ToLower(r.Name)
			if !unknown[name] {
				unknown[name] = true
				m.Unknown = append(m.Unknown, name)
			}
			continue
		}

		suffix, ok := FormKey(r.Species, r.Label)
		if !ok {
			continue
		}

		key := id
		if suffix != "" {
			key = id + "-" + suffix
		}
		m.Entries[key] = r.URL
		processed[r.Species+"-"+suffix] = true
	}

	m.Processed = len(processed)
	return m
}

// FormKey returns the mapping suffix for a labeled record. An empty label
// is the base form and yields an empty suffix. ok is false when a
// multi-form species carries a label none of its forms recognise.
func FormKey(species, label string) (string, bool) {
	if label == "" {
		return "", true
	}

	l := strings.ToLower(label)

	switch species {
	case "oricorio":
		switch {
		case strings.Contains(l, "baile"):
			return "baile", true
		case strings.Contains(l, "pom-pom"), strings.Contains(l, "pompom"):
			return "pompom", true
		case strings.Contains(l, "pa'u"), strings.Contains(l, "pau"):
			return "pau", true
		case strings.Contains(l, "sensu"):
			return "sensu", true
		}
		return "", false
	case "lycanroc":
		for _, f := range []string{"midday", "midnight", "dusk"} {
			if strings.Contains(l, f) {
				return f, true
			}
		}
		return "", false
	case "minior":
		if m := reMiniorCore.FindString(l); m != "" {
			return m, true
		}
		return "", false
	case "silvally":
		if m := reSilvally.FindString(l); m != "" {
			return m, true
		}
		return "", false
	}

	slug := reSpaces.ReplaceAllString(l, "-")
	slug = strings.NewReplacer("'", "", ":", "").Replace(slug)

	return slug, true
}

func lookupID(r Record, ids map[string]int) (string, bool) {
	if ids == nil {
		return r.Species, true
	}

	name := strings.ToLower(r.Name)
	if id, ok := ids[name]; ok {
		return strconv.Itoa(id), true
	}
	// sprite ids use dashes where the dex uses spaces ("tapu-koko")
	if id, ok := ids[strings.ReplaceAll(name, "-", " ")]; ok {
		return strconv.Itoa(id), true
	}

	return "", false
}
