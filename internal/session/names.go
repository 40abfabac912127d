package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// ErrInvalidName is wrapped by ValidateName failures.
var ErrInvalidName = errors.New("invalid session name")

var nameRegexp = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// ValidateName checks that name can be used as a session directory.
func ValidateName(name string) error {
	if !nameRegexp.MatchString(name) {
		return fmt.Errorf("%w %q: must match %s", ErrInvalidName, name, nameRegexp)
	}
	return nil
}

// Info describes a session found on disk.
type Info struct {
	Name    string `json:"name"`
	HasData bool   `json:"has_data"` // message store exists
	Running bool   `json:"running"`  // daemon socket present
}

// List returns the sessions under BaseDir sorted by name. Directories with
// invalid names are skipped. A missing base directory yields no sessions.
func List() ([]Info, error) {
	entries, err := os.ReadDir(filepath.Join(BaseDir(), "sessions"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var out []Info
	for _, e := range entries {
		if !e.IsDir() || ValidateName(e.Name()) != nil {
			continue
		}
		out = append(out, Info{
			Name:    e.Name(),
			HasData: exists(StoreDBPath(e.Name())),
			Running: exists(SocketPath(e.Name())),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
