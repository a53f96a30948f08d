// Package store loads and saves categorization profiles. Profiles are YAML
// files; the two built-in ones ship embedded in the binary and any of them
// can be overridden by a file on disk.
package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"lrocha/extrato-csv/assets"
	"lrocha/extrato-csv/internal/logging"
	"lrocha/extrato-csv/internal/models"
)

// ProfileStore resolves profile names to keyword-table configurations.
// Lookup order: explicit directory (if set), current directory, ./config,
// ~/.config/extrato-csv, then the embedded defaults.
type ProfileStore struct {
	// Dir, when non-empty, is checked before the standard locations.
	Dir    string
	logger logging.Logger
}

// NewProfileStore creates a profile store.
func NewProfileStore(logger logging.Logger) *ProfileStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ProfileStore{logger: logger}
}

// FindProfileFile looks for an override file for the named profile in the
// standard locations. Returns os.ErrNotExist when no override is present.
func (s *ProfileStore) FindProfileFile(name string) (string, error) {
	filename := name + ".yaml"

	var locations []string
	if s.Dir != "" {
		locations = append(locations, filepath.Join(s.Dir, filename))
	}
	locations = append(locations,
		filename,
		filepath.Join("config", filename),
	)

	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(homeDir, ".config", "extrato-csv", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadProfile loads the named profile, preferring an on-disk override over
// the embedded default, and validates it before returning.
func (s *ProfileStore) LoadProfile(name string) (models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = models.ProfilePersonal
	}

	var data []byte
	if path, err := s.FindProfileFile(name); err == nil {
		s.logger.WithField("file", path).Debug("Loading profile override from disk")
		data, err = os.ReadFile(path)
		if err != nil {
			return models.Profile{}, fmt.Errorf("error reading profile file %s: %w", path, err)
		}
	} else {
		embedded, err := assets.ProfilesFS.ReadFile("profiles/" + name + ".yaml")
		if err != nil {
			return models.Profile{}, fmt.Errorf("unknown profile %q: %w", name, err)
		}
		data = embedded
	}

	var profile models.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("error parsing profile %q: %w", name, err)
	}
	if profile.Name == "" {
		profile.Name = name
	}
	if err := profile.Validate(); err != nil {
		return models.Profile{}, fmt.Errorf("invalid profile %q: %w", name, err)
	}

	s.logger.WithFields(
		logging.Field{Key: "profile", Value: profile.Name},
		logging.Field{Key: "categories", Value: len(profile.Categories)},
	).Debug("Loaded categorization profile")
	return profile, nil
}

// ListProfiles returns the names of all loadable profiles: the embedded
// defaults plus any overrides found in the standard locations.
func (s *ProfileStore) ListProfiles() ([]string, error) {
	names := make(map[string]bool)

	entries, err := fs.ReadDir(assets.ProfilesFS, "profiles")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded profiles: %w", err)
	}
	for _, entry := range entries {
		names[strings.TrimSuffix(entry.Name(), ".yaml")] = true
	}

	dirs := []string{".", "config"}
	if s.Dir != "" {
		dirs = append([]string{s.Dir}, dirs...)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(homeDir, ".config", "extrato-csv"))
	}
	for _, dir := range dirs {
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
				continue
			}
			candidate := strings.TrimSuffix(f.Name(), ".yaml")
			if _, err := s.LoadProfile(candidate); err == nil {
				names[candidate] = true
			}
		}
	}

	list := make([]string, 0, len(names))
	for name := range names {
		list = append(list, name)
	}
	sort.Strings(list)
	return list, nil
}

// SaveProfile writes a profile to the given path, creating the directory if
// needed. Used to export a built-in profile as a starting point for a
// custom keyword table.
func (s *ProfileStore) SaveProfile(profile models.Profile, path string) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("error marshaling profile %q: %w", profile.Name, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing profile file %s: %w", path, err)
	}

	s.logger.WithFields(
		logging.Field{Key: "profile", Value: profile.Name},
		logging.Field{Key: "file", Value: path},
	).Info("Saved profile")
	return nil
}
