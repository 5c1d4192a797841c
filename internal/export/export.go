// Package export moves activity state across the process boundary as a
// JSON envelope, for backup and migration between machines.
package export

import (
	"encoding/json"
	"time"

	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/datekey"
	apperrors "github.com/gmsas95/fitloop-cli/internal/errors"
)

// Envelope wraps one activity's full state with provenance.
type Envelope struct {
	Title      string          `json:"title"`
	ExportDate string          `json:"exportDate"`
	Data       json.RawMessage `json:"data"`
}

// Result is what an import reports back. Failures are results, not panics;
// the caller decides how loudly to surface them.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Export captures an activity's state into an envelope.
func Export(a activity.Activity) (Envelope, error) {
	data, err := a.Snapshot()
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		Title:      a.Name(),
		ExportDate: time.Now().In(datekey.Location()).Format(time.RFC3339),
		Data:       data,
	}, nil
}

// Marshal renders the envelope as indented JSON for a backup file.
func Marshal(env Envelope) ([]byte, error) {
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "marshal export envelope")
	}
	return out, nil
}

// Import validates an envelope and replaces the activity's state, then
// recomputes so derived maps match the imported records.
func Import(a activity.Activity, raw []byte, today datekey.Key) Result {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Result{Success: false, Message: apperrors.ErrImportMalformed.Message}
	}
	if env.Title != "" && env.Title != a.Name() {
		return Result{Success: false, Message: apperrors.ErrImportMismatch.Message + ": " + env.Title}
	}

	// data.records must be a JSON object; anything else is rejected before
	// state is touched.
	var shape struct {
		Records map[string]json.RawMessage `json:"records"`
	}
	if err := json.Unmarshal(env.Data, &shape); err != nil || shape.Records == nil {
		return Result{Success: false, Message: apperrors.ErrImportMalformed.Message}
	}

	if err := a.Restore(env.Data, today); err != nil {
		return Result{Success: false, Message: err.Error()}
	}
	return Result{Success: true, Message: "imported " + a.Name()}
}
