package todo

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "todo.db"))
	require.NoError(t, err)
	db, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	m, err := NewManager(db)
	require.NoError(t, err)
	return m
}

func TestAddAndList(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Add("stretch", "morning stretch routine", PeriodDaily)
	require.NoError(t, err)
	_, err = m.Add("weigh in", "", PeriodWeekly)
	require.NoError(t, err)

	todos, err := m.List()
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "stretch", todos[0].Title)
	assert.Equal(t, 0, todos[0].Streak)
	assert.False(t, todos[0].Active)
}

func TestAddRejectsBadInput(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Add("", "", PeriodDaily)
	assert.Error(t, err)
	_, err = m.Add("stretch", "", Period("fortnightly"))
	assert.Error(t, err)
}

func TestFirstCompletionStartsStreak(t *testing.T) {
	m := newTestManager(t)
	added, err := m.Add("stretch", "", PeriodDaily)
	require.NoError(t, err)

	now := time.Now()
	done, err := m.Complete(added.ID, now)
	require.NoError(t, err)

	assert.Equal(t, 1, done.Streak)
	assert.True(t, done.Active)
	require.NotNil(t, done.NextDue)
	assert.True(t, done.NextDue.After(now.Add(24*time.Hour)))
}

func TestCompletionInsideWindowExtendsStreak(t *testing.T) {
	m := newTestManager(t)
	added, err := m.Add("stretch", "", PeriodDaily)
	require.NoError(t, err)

	day1 := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	_, err = m.Complete(added.ID, day1)
	require.NoError(t, err)

	// Next morning is inside the 1.2-day window.
	done, err := m.Complete(added.ID, day1.Add(14*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, done.Streak)
}

func TestCompletionAfterLapseRestartsStreak(t *testing.T) {
	m := newTestManager(t)
	added, err := m.Add("stretch", "", PeriodDaily)
	require.NoError(t, err)

	day1 := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	_, err = m.Complete(added.ID, day1)
	require.NoError(t, err)
	_, err = m.Complete(added.ID, day1.Add(14*time.Hour))
	require.NoError(t, err)

	done, err := m.Complete(added.ID, day1.Add(5*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, done.Streak)
}

func TestExpireOverdueResetsLapsedTodos(t *testing.T) {
	m := newTestManager(t)
	added, err := m.Add("stretch", "", PeriodDaily)
	require.NoError(t, err)

	day1 := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	_, err = m.Complete(added.ID, day1)
	require.NoError(t, err)

	n, err := m.ExpireOverdue(day1.Add(3 * 24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := m.Get(added.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Streak)
	assert.False(t, got.Active)
	assert.Nil(t, got.NextDue)
}

func TestExpireOverdueLeavesCurrentTodosAlone(t *testing.T) {
	m := newTestManager(t)
	added, err := m.Add("stretch", "", PeriodDaily)
	require.NoError(t, err)

	day1 := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	_, err = m.Complete(added.ID, day1)
	require.NoError(t, err)

	n, err := m.ExpireOverdue(day1.Add(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDelete(t *testing.T) {
	m := newTestManager(t)
	added, err := m.Add("stretch", "", PeriodDaily)
	require.NoError(t, err)

	require.NoError(t, m.Delete(added.ID))
	assert.Error(t, m.Delete(added.ID))

	todos, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestRemaining(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(10 * time.Hour)

	active := Todo{Active: true, NextDue: &due}
	assert.Equal(t, 10*time.Hour, active.Remaining(now))
	assert.Equal(t, time.Duration(0), active.Remaining(due.Add(time.Minute)))

	assert.Equal(t, time.Duration(0), Todo{}.Remaining(now))
}
