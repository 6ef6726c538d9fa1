package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
)

var ErrNoConfig = errors.New("no config selected")

const DefaultLabel = "Default"

// Store is a directory of labeled YAML profiles plus a file naming the
// active one.
type Store struct {
	Root string
}

func ConfigRoot() string {
	// Windows
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, "shinydex")
	}

	return filepath.Join(xdg.ConfigHome, "shinydex")
}

func DefaultStore() Store {
	return Store{Root: ConfigRoot()}
}

func (s Store) ConfigsDir() string {
	return filepath.Join(s.Root, "configs")
}

func (s Store) currentLabelFile() string {
	return filepath.Join(s.Root, "current_config")
}

func (s Store) PathFor(label string) string {
	return filepath.Join(s.ConfigsDir(), label+".yaml")
}

func (s Store) ensureDirs() error {
	return os.MkdirAll(s.ConfigsDir(), 0755)
}

func (s Store) CurrentLabel() (string, error) {
	if err := s.ensureDirs(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(s.currentLabelFile())
	if os.IsNotExist(err) {
		return "", ErrNoConfig
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}

func (s Store) ActivePath() (string, error) {
	label, err := s.CurrentLabel()
	if err != nil {
		return "", err
	}
	if label == "" {
		return "", ErrNoConfig
	}

	return s.PathFor(label), nil
}

// PathByLabel is like PathFor but fails when the profile does not exist.
func (s Store) PathByLabel(label string) (string, error) {
	p := s.PathFor(label)
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("config %q does not exist", label)
	}

	return p, nil
}

type ConfigInfo struct {
	Label  string
	Path   string
	Active bool
}

func (s Store) List() ([]ConfigInfo, error) {
	if err := s.ensureDirs(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.ConfigsDir())
	if err != nil {
		return nil, err
	}

	activeLabel, _ := s.CurrentLabel()
	var out []ConfigInfo

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		label := strings.TrimSuffix(name, ".yaml")
		out = append(out, ConfigInfo{
			Label:  label,
			Path:   filepath.Join(s.ConfigsDir(), name),
			Active: label == activeLabel,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func (s Store) Switch(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.New("label cannot be empty")
	}
	if err := s.ensureDirs(); err != nil {
		return err
	}

	if _, err := os.Stat(s.PathFor(label)); err != nil {
		return fmt.Errorf("config %q does not exist", label)
	}

	return os.WriteFile(s.currentLabelFile(), []byte(label), 0644)
}

// Create writes a profile holding the default values.
func (s Store) Create(label string) (string, error) {
	if strings.TrimSpace(label) == "" {
		return "", errors.New("label cannot be empty")
	}
	if err := s.ensureDirs(); err != nil {
		return "", err
	}

	path := s.PathFor(label)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config %q already exists", label)
	}

	if err := SaveYAML(DefaultConfig(), path); err != nil {
		return "", err
	}

	return path, nil
}

func (s Store) Rename(oldLabel, newLabel string) error {
	if strings.TrimSpace(newLabel) == "" {
		return errors.New("new label cannot be empty")
	}
	if err := s.ensureDirs(); err != nil {
		return err
	}

	oldPath, newPath := s.PathFor(oldLabel), s.PathFor(newLabel)

	if _, err := os.Stat(oldPath); err != nil {
		return fmt.Errorf("config %q does not exist", oldLabel)
	}
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("config %q already exists", newLabel)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return err
	}

	if active, _ := s.CurrentLabel(); active == oldLabel {
		return os.WriteFile(s.currentLabelFile(), []byte(newLabel), 0644)
	}

	return nil
}

// Remove deletes a profile. Removing the active one falls back to Default,
// or to no active profile when Default was never created.
func (s Store) Remove(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.New("label cannot be empty")
	}
	if label == DefaultLabel {
		return errors.New("cannot remove the Default config")
	}

	path, err := s.PathByLabel(label)
	if err != nil {
		return err
	}

	if active, _ := s.CurrentLabel(); active == label {
		if _, err := os.Stat(s.PathFor(DefaultLabel)); err == nil {
			if err := s.Switch(DefaultLabel); err != nil {
				return fmt.Errorf("failed switching to Default: %w", err)
			}
		} else if err := os.Remove(s.currentLabelFile()); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return os.Remove(path)
}

// InitDefault creates Default.yaml if missing and makes it active.
func (s Store) InitDefault() (string, error) {
	path := s.PathFor(DefaultLabel)

	if _, err := os.Stat(path); err != nil {
		if _, err := s.Create(DefaultLabel); err != nil {
			return "", err
		}
	}

	if err := s.Switch(DefaultLabel); err != nil {
		return "", err
	}

	return path, nil
}
