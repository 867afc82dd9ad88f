package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keySavedGame   = "saved_game"
	keyStats       = "stats"
)

// Preferences stores user settings.
type Preferences struct {
	WhiteName    string    `json:"white_name"`
	BlackName    string    `json:"black_name"`
	SoundEnabled bool      `json:"sound_enabled"`
	FlippedBoard bool      `json:"flipped_board"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		WhiteName:    "White",
		BlackName:    "Black",
		SoundEnabled: true,
		LastPlayed:   time.Now(),
	}
}

// SavedGame is a snapshot of an in-progress game, persisted after every
// move so the board survives a restart.
type SavedGame struct {
	FEN             string    `json:"fen"`
	MoveCount       int       `json:"move_count"`
	CapturedByWhite int       `json:"captured_by_white"`
	CapturedByBlack int       `json:"captured_by_black"`
	SavedAt         time.Time `json:"saved_at"`
}

// PlayStats stores cumulative play statistics.
type PlayStats struct {
	GamesStarted int `json:"games_started"`
	MovesMade    int `json:"moves_made"`
	Captures     int `json:"captures"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return NewStorageAt(dbDir)
}

// NewStorageAt opens the database in the given directory.
func NewStorageAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()
	return s.putJSON(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returning defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	if err := s.getJSON(keyPreferences, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// SaveGame persists the in-progress game snapshot.
func (s *Storage) SaveGame(game *SavedGame) error {
	game.SavedAt = time.Now()
	return s.putJSON(keySavedGame, game)
}

// LoadGame returns the autosaved game, or nil if there is none.
func (s *Storage) LoadGame() (*SavedGame, error) {
	game := &SavedGame{}
	found, err := s.getJSONIfPresent(keySavedGame, game)
	if err != nil || !found {
		return nil, err
	}
	return game, nil
}

// ClearGame removes the autosaved game (on New Game).
func (s *Storage) ClearGame() error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(keySavedGame))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// LoadStats loads play statistics, returning empty stats if not found.
func (s *Storage) LoadStats() (*PlayStats, error) {
	stats := &PlayStats{}
	if err := s.getJSON(keyStats, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// RecordGameStart bumps the games-started counter.
func (s *Storage) RecordGameStart() error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.GamesStarted++
	return s.putJSON(keyStats, stats)
}

// RecordMove bumps the move counter, and the capture counter when the move
// took a piece.
func (s *Storage) RecordMove(captured bool) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.MovesMade++
	if captured {
		stats.Captures++
	}
	return s.putJSON(keyStats, stats)
}

// putJSON stores v under key as JSON.
func (s *Storage) putJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getJSON loads key into v, leaving v untouched if the key is absent.
func (s *Storage) getJSON(key string, v interface{}) error {
	_, err := s.getJSONIfPresent(key, v)
	return err
}

// getJSONIfPresent loads key into v and reports whether the key existed.
func (s *Storage) getJSONIfPresent(key string, v interface{}) (bool, error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return found, err
}
