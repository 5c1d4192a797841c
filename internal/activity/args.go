package activity

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/gmsas95/fitloop-cli/internal/errors"
)

// Argument parsing helpers shared by the concrete activities. All failures
// come back as ErrInvalidInput so the CLI can render them uniformly.

// FloatArg parses a required float argument.
func FloatArg(args map[string]string, key string) (float64, error) {
	raw, ok := args[key]
	if !ok || raw == "" {
		return 0, apperrors.New(apperrors.ErrInvalidInput.Code, "missing argument: "+key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrInvalidInput.Code, "argument "+key+" must be a number")
	}
	return v, nil
}

// PositiveFloatArg parses a required float that must be > 0.
func PositiveFloatArg(args map[string]string, key string) (float64, error) {
	v, err := FloatArg(args, key)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, apperrors.New(apperrors.ErrInvalidInput.Code, "argument "+key+" must be positive")
	}
	return v, nil
}

// IntArg parses a required integer argument.
func IntArg(args map[string]string, key string) (int, error) {
	raw, ok := args[key]
	if !ok || raw == "" {
		return 0, apperrors.New(apperrors.ErrInvalidInput.Code, "missing argument: "+key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrInvalidInput.Code, "argument "+key+" must be an integer")
	}
	return v, nil
}

// BoundedIntArg parses a required integer within [min, max].
func BoundedIntArg(args map[string]string, key string, min, max int) (int, error) {
	v, err := IntArg(args, key)
	if err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, apperrors.New(apperrors.ErrInvalidInput.Code,
			fmt.Sprintf("argument %s must be between %d and %d", key, min, max))
	}
	return v, nil
}

// StringArg parses a required non-empty string argument.
func StringArg(args map[string]string, key string) (string, error) {
	raw, ok := args[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return "", apperrors.New(apperrors.ErrInvalidInput.Code, "missing argument: "+key)
	}
	return strings.TrimSpace(raw), nil
}

// ClockArg parses an "HH:MM" argument into minutes after midnight.
func ClockArg(args map[string]string, key string) (int, error) {
	raw, err := StringArg(args, key)
	if err != nil {
		return 0, err
	}
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, apperrors.New(apperrors.ErrInvalidInput.Code, "argument "+key+" must look like HH:MM")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, apperrors.New(apperrors.ErrInvalidInput.Code, "argument "+key+" has an invalid hour")
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, apperrors.New(apperrors.ErrInvalidInput.Code, "argument "+key+" has an invalid minute")
	}
	return h*60 + m, nil
}
