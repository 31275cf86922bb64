// Package settings persists player preferences with gdata.
package settings

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "ringshot"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Theme names understood by the terminal front end.
var Themes = []string{"default", "neon", "pastel", "mono"}

// Settings holds the player preferences. They are global, not per profile.
type Settings struct {
	SoundEnabled bool    `yaml:"soundEnabled"`
	Volume       float64 `yaml:"volume"` // Master gain 0.0 ~ 1.0
	ShakeEnabled bool    `yaml:"shakeEnabled"`
	Theme        string  `yaml:"theme"`
}

// Defaults returns the settings used before anything is saved.
func Defaults() Settings {
	return Settings{
		SoundEnabled: true,
		Volume:       0.3,
		ShakeEnabled: true,
		Theme:        "default",
	}
}

// Manager loads and saves settings. A nil gdata manager keeps settings in
// memory only.
type Manager struct {
	mu       sync.Mutex
	data     *gdata.Manager
	settings Settings
	logger   *log.Logger
}

// Open opens the gdata store for ringshot and loads saved settings.
func Open(logger *log.Logger) (*Manager, error) {
	data, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return NewManager(nil, logger), fmt.Errorf("settings: open store: %w", err)
	}
	return NewManager(data, logger), nil
}

// NewManager creates a manager on top of data, which may be nil.
// Load failures are logged and fall back to defaults.
func NewManager(data *gdata.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	m := &Manager{
		data:     data,
		settings: Defaults(),
		logger:   logger,
	}
	if err := m.Load(); err != nil {
		logger.Warn("using default settings", "err", err)
	}
	return m
}

// Persistent reports whether changes survive a restart.
func (m *Manager) Persistent() bool {
	return m != nil && m.data != nil
}

// Load reads settings from the store. Missing data means defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = Defaults()
	if m.data == nil || !m.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("settings: decode: %w", err)
	}
	m.settings = normalize(loaded)
	return nil
}

// Save writes the current settings. It is a no-op without a store.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := m.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	m.logger.Debug("settings saved", "sound", m.settings.SoundEnabled, "volume", m.settings.Volume)
	return nil
}

// Get returns a copy of the current settings. A nil manager yields defaults.
func (m *Manager) Get() Settings {
	if m == nil {
		return Defaults()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// Update applies fn to the settings in memory. Call Save to persist.
func (m *Manager) Update(fn func(*Settings)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.settings)
	m.settings = normalize(m.settings)
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

func normalize(s Settings) Settings {
	s.Volume = clampVolume(s.Volume)
	if !ValidTheme(s.Theme) {
		s.Theme = "default"
	}
	return s
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
