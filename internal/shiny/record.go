package shiny

import (
	"fmt"
	"strings"
)

// Record is one output line: "name: url" or "name (label): url".
type Record struct {
	Species string
	Name    string
	Label   string
	URL     string
}

func (r Record) String() string {
	name := r.Name
	if name == "" {
		name = r.Species
	}

	if r.Label != "" {
		return name + " (" + r.Label + "): " + r.URL
	}

	return name + ": " + r.URL
}

// ParseRecord reverses Record.String. The URL is everything after the last
// ": " so names that contain a colon, like "Type: Null", survive.
func ParseRecord(line string) (Record, error) {
	line = strings.TrimSpace(line)

	i := strings.LastIndex(line, ": ")
	if i <= 0 || i+2 >= len(line) {
		return Record{}, fmt.Errorf("malformed record %q", line)
	}

	head, u := line[:i], strings.TrimSpace(line[i+2:])

	var r Record
	r.URL = u

	if j := strings.Index(head, " ("); j > 0 && strings.HasSuffix(head, ")") {
		r.Name = head[:j]
		r.Label = head[j+2 : len(head)-1]
	} else {
		r.Name = head
	}

	r.Species = r.Name
	if r.Name == typeNullName {
		r.Species = "typenull"
	}

	return r, nil
}
