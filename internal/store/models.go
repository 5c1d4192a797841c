package store

import (
	"encoding/json"
	"time"
)

// InputEvent is one raw record operation as the user entered it. The journal
// is append-only: engine state is derived and can always be rebuilt by
// replaying events, so nothing here is ever updated in place.
type InputEvent struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	Activity  string          `gorm:"index:idx_activity_day" json:"activity"`
	Day       string          `gorm:"index:idx_activity_day" json:"day"`
	Args      json.RawMessage `gorm:"type:text" json:"args"`
	CreatedAt time.Time       `json:"createdAt"`
}

// SettleRun records one absence-settlement pass, so restarts can tell how
// far the daily job got.
type SettleRun struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Day       string    `gorm:"index" json:"day"`
	CreatedAt time.Time `json:"createdAt"`
}
