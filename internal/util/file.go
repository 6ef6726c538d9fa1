package util

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const tempSuffix = ".partial"

// WriteLines replaces path with one newline-terminated line per entry. The
// data goes to a sibling temp file first so an interrupted write never
// leaves a truncated output behind.
func WriteLines(path string, lines []string) error {
	tmp := path + tempSuffix

	out, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for _, l := range lines {
		if _, err := w.WriteString(l + "\n"); err != nil {
			_ = out.Close()
			_ = os.Remove(tmp)
			return err
		}
	}

	if err := w.Flush(); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return err
	}

	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}

// ReadLines returns the non-blank lines of path, trimmed.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("error closing input file %s: %v", path, cerr)
		}
	}()

	var out []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			out = append(out, line)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return out, nil
}

// EnsureParentDir creates the directory an output file will live in.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	return os.MkdirAll(dir, 0755)
}
