// Package persist reads and writes the TOML save file
package persist

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/eldritch-clicker/constants"
	"github.com/lixenwraith/eldritch-clicker/game"
)

var (
	// ErrIO marks a save or load that failed at the filesystem level
	ErrIO = errors.New("save file io")
	// ErrCorruptSave marks a save file that exists but cannot be restored
	ErrCorruptSave = errors.New("corrupt save")
)

// Saver persists a state snapshot
type Saver interface {
	Save(s *game.State) error
}

// saveFile is the on-disk document
type saveFile struct {
	Version   int               `toml:"version"`
	SaveID    string            `toml:"save_id"`
	SavedAt   time.Time         `toml:"saved_at"`
	Points    float64           `toml:"points"`
	Lifetime  float64           `toml:"lifetime"`
	Menu      string            `toml:"menu"`
	Selected  int               `toml:"selected"`
	Buildings map[string]uint64 `toml:"buildings"`
	Upgrades  map[string]bool   `toml:"upgrades"`
}

// Manager owns the save file at a fixed path
type Manager struct {
	path string
	now  func() time.Time
}

// NewManager creates a manager for path; empty path selects constants.SavePath
func NewManager(path string) *Manager {
	if path == "" {
		path = constants.SavePath
	}
	return &Manager{path: path, now: time.Now}
}

// Path returns the save file location
func (m *Manager) Path() string {
	return m.path
}

// Save writes s to a temp file beside the save and renames it into place
func (m *Manager) Save(s *game.State) error {
	doc := saveFile{
		Version:   constants.SaveVersion,
		SaveID:    s.SaveID,
		SavedAt:   m.now().UTC().Truncate(time.Second),
		Points:    s.Points,
		Lifetime:  s.Lifetime,
		Menu:      s.Menu.String(),
		Selected:  s.Selected,
		Buildings: make(map[string]uint64, len(s.Buildings)),
		Upgrades:  make(map[string]bool, len(s.Upgrades)),
	}
	for _, b := range s.Buildings {
		doc.Buildings[b.ID] = b.Owned
	}
	for _, u := range s.Upgrades {
		doc.Upgrades[u.ID] = u.Purchased
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(m.path)+"-*")
	if err != nil {
		return fmt.Errorf("%w: create temp: %w", ErrIO, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %w", ErrIO, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %w", ErrIO, tmpName, err)
	}
	if err := os.Rename(tmpName, m.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %w", ErrIO, m.path, err)
	}
	return nil
}

// Load restores the saved state
// A missing file yields a fresh state and nil error; any other failure yields a fresh state
// and an error wrapping ErrIO or ErrCorruptSave so the caller can report and continue
func (m *Manager) Load() (*game.State, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return game.New(), nil
	}
	if err != nil {
		return game.New(), fmt.Errorf("%w: read %s: %w", ErrIO, m.path, err)
	}

	var doc saveFile
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return game.New(), fmt.Errorf("%w: %s: %w", ErrCorruptSave, m.path, err)
	}

	s, err := restore(doc)
	if err != nil {
		return game.New(), fmt.Errorf("%w: %s: %w", ErrCorruptSave, m.path, err)
	}
	return s, nil
}

func restore(doc saveFile) (*game.State, error) {
	if doc.Version != constants.SaveVersion {
		return nil, fmt.Errorf("unsupported version %d", doc.Version)
	}
	if !validAmount(doc.Points) || !validAmount(doc.Lifetime) {
		return nil, fmt.Errorf("invalid points %v / lifetime %v", doc.Points, doc.Lifetime)
	}
	if doc.Points > doc.Lifetime {
		return nil, fmt.Errorf("points %v exceed lifetime %v", doc.Points, doc.Lifetime)
	}
	if doc.Selected < 0 {
		return nil, fmt.Errorf("negative selection %d", doc.Selected)
	}

	s := game.New()
	if doc.SaveID != "" {
		s.SaveID = doc.SaveID
	}
	s.Points = doc.Points
	s.Lifetime = doc.Lifetime
	if doc.Menu != "" {
		menu, ok := game.ParseMenu(doc.Menu)
		if !ok {
			return nil, fmt.Errorf("unknown menu %q", doc.Menu)
		}
		s.Menu = menu
	}
	s.Selected = doc.Selected

	// Ids missing from the catalog are dropped; catalog entries missing from the file stay zero
	for i := range s.Buildings {
		s.Buildings[i].Owned = doc.Buildings[s.Buildings[i].ID]
	}
	for i := range s.Upgrades {
		s.Upgrades[i].Purchased = doc.Upgrades[s.Upgrades[i].ID]
	}

	s.RecomputeClickMultiplier()
	return s, nil
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
