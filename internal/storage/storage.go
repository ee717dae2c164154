package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Preferences stores the user-facing knobs of the application.
type Preferences struct {
	BeamWidth   int           `json:"beam_width"`
	MaxDepth    int           `json:"max_depth"`
	UseParallel bool          `json:"use_parallel"`
	AutoSpeed   time.Duration `json:"auto_speed"`
	LastPlayed  time.Time     `json:"last_played"`
}

// DefaultPreferences returns the default preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		BeamWidth:   50,
		MaxDepth:    3,
		UseParallel: true,
		AutoSpeed:   500 * time.Millisecond,
		LastPlayed:  time.Now(),
	}
}

// PlayStats stores lifetime play statistics.
type PlayStats struct {
	GamesPlayed   int           `json:"games_played"`
	BestScore     int           `json:"best_score"`
	TotalScore    int           `json:"total_score"`
	TotalLines    int           `json:"total_lines"`
	LongestGame   int           `json:"longest_game"` // turns
	TotalPlayTime time.Duration `json:"total_play_time"`
}

// AverageScore returns the mean score per game.
func (s *PlayStats) AverageScore() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.GamesPlayed)
}

// GameResult summarizes one finished game for recording.
type GameResult struct {
	Score    int
	Turns    int
	Lines    int
	Duration time.Duration
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the database at an explicit directory.
func OpenAt(dir string) (*Storage, error) {
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

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves play statistics.
func (s *Storage) SaveStats(stats *PlayStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads play statistics, returning empty stats if not found.
func (s *Storage) LoadStats() (*PlayStats, error) {
	stats := &PlayStats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordGame records a completed game and updates statistics.
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalScore += result.Score
	stats.TotalLines += result.Lines
	stats.TotalPlayTime += result.Duration
	if result.Score > stats.BestScore {
		stats.BestScore = result.Score
	}
	if result.Turns > stats.LongestGame {
		stats.LongestGame = result.Turns
	}

	return s.SaveStats(stats)
}
