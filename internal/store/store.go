// Package store persists activity state. BadgerDB holds the engine state
// snapshots keyed by activity name; SQLite keeps an append-only journal of
// raw inputs so state can be audited or rebuilt.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	_ "github.com/glebarez/go-sqlite" // Pure Go SQLite driver
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gmsas95/fitloop-cli/internal/config"
	apperrors "github.com/gmsas95/fitloop-cli/internal/errors"
)

const statePrefix = "state:"

// Store provides unified access to SQLite and BadgerDB.
type Store struct {
	db     *gorm.DB
	badger *badger.DB
}

// New opens both databases under the configured paths.
func New(cfg *config.Config) (*Store, error) {
	sqliteDB, err := sql.Open("sqlite", cfg.Storage.SQLitePath+"?_journal=WAL&_synchronous=NORMAL&_busy_timeout=5000&_cache_size=-64000")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "open sqlite")
	}
	sqliteDB.SetMaxOpenConns(10)
	sqliteDB.SetMaxIdleConns(5)
	sqliteDB.SetConnMaxLifetime(time.Hour)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqliteDB}, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "open sqlite")
	}

	if err := db.AutoMigrate(&InputEvent{}, &SettleRun{}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "migrate sqlite schema")
	}

	badgerOpts := badger.DefaultOptions(cfg.Storage.BadgerPath).
		WithLogger(nil).
		WithNumVersionsToKeep(1).
		WithCompactL0OnClose(true).
		WithValueLogFileSize(16 << 20).
		WithMemTableSize(16 << 20)

	badgerDB, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "open badger")
	}

	return &Store{db: db, badger: badgerDB}, nil
}

// Close closes all database connections.
func (s *Store) Close() error {
	return s.badger.Close()
}

// DB returns the GORM database instance.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// ==================== State Snapshots (BadgerDB) ====================

// SaveState writes an activity's engine state snapshot.
func (s *Store) SaveState(activity string, state json.RawMessage) error {
	return s.badger.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(statePrefix+activity), state)
	})
}

// LoadState reads an activity's engine state snapshot. ErrNotFound when the
// activity has never been saved.
func (s *Store) LoadState(activity string) (json.RawMessage, error) {
	var val []byte
	err := s.badger.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(statePrefix + activity))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			val = append([]byte{}, v...)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, apperrors.Wrap(err, apperrors.ErrNotFound.Code, "no saved state for "+activity)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "load state for "+activity)
	}
	return val, nil
}

// DeleteState removes an activity's snapshot, for clear-history.
func (s *Store) DeleteState(activity string) error {
	return s.badger.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(statePrefix + activity))
	})
}

// ==================== Input Journal (SQLite) ====================

// AppendInput journals one raw record operation.
func (s *Store) AppendInput(activity, day string, args map[string]string) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, "marshal input args")
	}
	event := &InputEvent{
		ID:       uuid.New().String(),
		Activity: activity,
		Day:      day,
		Args:     raw,
	}
	return s.db.Create(event).Error
}

// InputsByDay lists the journaled inputs for one activity and day, oldest
// first.
func (s *Store) InputsByDay(activity, day string) ([]InputEvent, error) {
	var events []InputEvent
	err := s.db.Where("activity = ? AND day = ?", activity, day).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

// RecentInputs lists the latest journaled inputs across all activities.
func (s *Store) RecentInputs(limit int) ([]InputEvent, error) {
	var events []InputEvent
	err := s.db.Order("created_at DESC").Limit(limit).Find(&events).Error
	return events, err
}

// ClearInputs removes all journal entries for one activity.
func (s *Store) ClearInputs(activity string) error {
	return s.db.Where("activity = ?", activity).Delete(&InputEvent{}).Error
}

// ==================== Settle Bookkeeping (SQLite) ====================

// MarkSettled records that the absence-settlement pass ran for a day.
func (s *Store) MarkSettled(day string) error {
	return s.db.Create(&SettleRun{Day: day}).Error
}

// LastSettledDay returns the most recent settled day, empty when the job
// has never run.
func (s *Store) LastSettledDay() (string, error) {
	var run SettleRun
	err := s.db.Order("day DESC").First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return run.Day, nil
}
