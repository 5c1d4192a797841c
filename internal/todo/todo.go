// Package todo manages periodic tasks: daily, weekly or monthly items that
// hold a completion streak while each window is met and fall back to zero
// when a window lapses. Separate from the scoring engine; todos have a due
// clock, not a per-day score.
package todo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/gmsas95/fitloop-cli/internal/errors"
)

// Period is the todo's recurrence.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Window is how long after a completion the next one may land while keeping
// the streak. The 1.2 factor gives slack past the nominal period so an
// evening completion followed by a morning one still counts.
func (p Period) Window() (time.Duration, error) {
	switch p {
	case PeriodDaily:
		return time.Duration(1.2 * float64(24*time.Hour)), nil
	case PeriodWeekly:
		return time.Duration(1.2 * float64(7*24*time.Hour)), nil
	case PeriodMonthly:
		return time.Duration(1.2 * float64(30*24*time.Hour)), nil
	default:
		return 0, apperrors.New(apperrors.ErrInvalidInput.Code, "period must be daily, weekly or monthly")
	}
}

// Todo is one periodic task.
type Todo struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"index" json:"title"`
	Description   string     `json:"description"`
	Period        Period     `json:"period"`
	Streak        int        `json:"streak"`
	LastCompleted *time.Time `json:"lastCompleted"`
	NextDue       *time.Time `json:"nextDue"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Remaining is the time left in the current window, zero when inactive or
// already lapsed.
func (t Todo) Remaining(now time.Time) time.Duration {
	if !t.Active || t.NextDue == nil {
		return 0
	}
	left := t.NextDue.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Manager persists todos in the shared SQLite database.
type Manager struct {
	db *gorm.DB
}

// NewManager migrates the schema and returns the manager.
func NewManager(db *gorm.DB) (*Manager, error) {
	if err := db.AutoMigrate(&Todo{}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "migrate todo schema")
	}
	return &Manager{db: db}, nil
}

// Add creates an inactive todo. The streak starts on first completion.
func (m *Manager) Add(title, description string, period Period) (*Todo, error) {
	if title == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput.Code, "todo title must not be empty")
	}
	if _, err := period.Window(); err != nil {
		return nil, err
	}
	t := &Todo{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Period:      period,
	}
	if err := m.db.Create(t).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "create todo")
	}
	return t, nil
}

// List returns all todos in creation order.
func (m *Manager) List() ([]Todo, error) {
	var todos []Todo
	err := m.db.Order("created_at ASC").Find(&todos).Error
	return todos, err
}

// Get fetches one todo by id.
func (m *Manager) Get(id string) (*Todo, error) {
	var t Todo
	if err := m.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrNotFound.Code, "todo not found")
	}
	return &t, nil
}

// Complete marks the todo done now. Completing inside the current window
// extends the streak; completing a fresh or lapsed todo starts it at 1.
func (m *Manager) Complete(id string, now time.Time) (*Todo, error) {
	t, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	if t.Active && t.NextDue != nil && !now.After(*t.NextDue) {
		t.Streak++
	} else {
		t.Streak = 1
	}

	window, err := t.Period.Window()
	if err != nil {
		return nil, err
	}
	due := now.Add(window)
	t.LastCompleted = &now
	t.NextDue = &due
	t.Active = true

	if err := m.db.Save(t).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "save todo")
	}
	return t, nil
}

// Delete removes a todo permanently.
func (m *Manager) Delete(id string) error {
	res := m.db.Delete(&Todo{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Wrap(res.Error, apperrors.ErrInternal.Code, "delete todo")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.ErrNotFound.Code, "todo not found: "+id)
	}
	return nil
}

/// ExpireOverdue resets every todo whose window has lapsed: streak to zero,
// inactive, no due date. Returns how many were reset.
func (m *Manager) ExpireOverdue(now time.Time) (int, error) {
	todos, err := m.List()
	if err != nil {
		return 0, err
	}
	expired := 0
	for i := range todos {
		t := &todos[i]
		if !t.Active || t.NextDue == nil || !now.After(*t.NextDue) {
			continue
		}
		t.Streak = 0
		t.Active = false
		t.NextDue = nil
		if err := m.db.Save(t).Error; err != nil {
			return expired, apperrors.Wrap(err, apperrors.ErrInternal.Code, "save todo")
		}
		expired++
	}
	return expired, nil
}
