// Package settings persists display preferences independently of the
// transactional data: one named JSON record, loaded eagerly at startup,
// rewritten on every setter call.
package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"zenspend/internal/i18n"
)

// recordName is the fixed storage key for the settings blob.
const recordName = "settings-storage"

type Settings struct {
	Currency     string `json:"currency"`
	NumberFormat string `json:"numberFormat"` // "dot" → 1,234.56  "comma" → 1.234,56
	Language     string `json:"language"`     // "en" or "id"
	Theme        string `json:"theme"`
	Style        string `json:"style"`
}

func Defaults() Settings {
	return Settings{
		Currency:     "USD",
		NumberFormat: "dot",
		Language:     "en",
		Theme:        "light",
		Style:        "default",
	}
}

// Store holds the current settings and writes every change through to
// its backend immediately.
type Store struct {
	mu      sync.Mutex
	backend Backend
	current Settings
}

// NewStore loads the persisted record from the backend. A record that
// was never written yields the defaults; a corrupt or unreadable record
// is an error.
func NewStore(backend Backend) (*Store, error) {
	s := &Store{backend: backend, current: Defaults()}

	data, err := backend.Load(recordName)
	switch {
	case err == ErrNotFound:
		// First run.
	case err != nil:
		return nil, fmt.Errorf("load settings: %w", err)
	default:
		if err := json.Unmarshal(data, &s.current); err != nil {
			return nil, fmt.Errorf("decode settings: %w", err)
		}
	}

	i18n.SetLanguage(s.current.Language)
	return s, nil
}

// Current returns a copy of the settings.
func (s *Store) Current() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Store) SetCurrency(currency string) error {
	return s.update(func(v *Settings) { v.Currency = currency })
}

func (s *Store) SetNumberFormat(format string) error {
	return s.update(func(v *Settings) { v.NumberFormat = format })
}

// SetLanguage persists the preference and switches the process-wide
// localization context.
func (s *Store) SetLanguage(language string) error {
	if err := s.update(func(v *Settings) { v.Language = language }); err != nil {
		return err
	}
	i18n.SetLanguage(language)
	return nil
}

func (s *Store) SetTheme(theme string) error {
	return s.update(func(v *Settings) { v.Theme = theme })
}

func (s *Store) SetStyle(style string) error {
	return s.update(func(v *Settings) { v.Style = style })
}

func (s *Store) update(apply func(*Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	apply(&next)

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.backend.Store(recordName, data); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	s.current = next
	return nil
}
