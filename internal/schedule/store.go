package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"google.golang.org/api/calendar/v3"
)

const scheduleSuffix = ".json"

// Store persists schedules as ordered JSON arrays of sanitized events
// under a single directory. Order in the file is the order the backend
// returned, which is start-time order.
type Store struct {
	Dir string
}

// Path resolves a schedule name to a file path, appending the .json
// suffix when the name lacks it.
func (s *Store) Path(name string) string {
	if !strings.HasSuffix(name, scheduleSuffix) {
		name += scheduleSuffix
	}
	return filepath.Join(s.Dir, name)
}

// Save sanitizes events and writes them to the named schedule file.
// The write goes through a temp file and a rename so a crash can never
// leave a half-written schedule behind.
func (s *Store) Save(name string, events []*calendar.Event) error {
	detached := SanitizeAll(events)
	b, err := json.MarshalIndent(detached, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schedule %q: %w", name, err)
	}

	path := s.Path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0600); err != nil {
		return fmt.Errorf("writing schedule %q: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing schedule %q: %w", name, err)
	}
	return nil
}

// Load reads the named schedule file back as an ordered event slice.
func (s *Store) Load(name string) ([]*calendar.Event, error) {
	path := s.Path(name)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrScheduleNotFound, path)
		}
		return nil, fmt.Errorf("reading schedule %q: %w", name, err)
	}

	var events []*calendar.Event
	if err := json.Unmarshal(b, &events); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSchedule, path, err)
	}
	return events, nil
}

// Remove deletes the named schedule file.
func (s *Store) Remove(name string) error {
	path := s.Path(name)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrScheduleNotFound, path)
		}
		return fmt.Errorf("deleting schedule %q: %w", name, err)
	}
	return nil
}

// List returns the names of every schedule in the store, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("listing schedules in %q: %w", s.Dir, err)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), scheduleSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), scheduleSuffix))
	}
	sort.Strings(names)
	return names, nil
}
