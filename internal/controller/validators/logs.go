package validators

import (
	"errors"
	"unicode/utf8"

	"github.com/Egor213/LogBoard/internal/domain"
)

const (
	MaxListLimit      = 999_998
	MaxAggregateLimit = 1000
	MinGenerateCount  = 10
	MaxGenerateCount  = 1000
	MaxDaysBack       = 365
)

var (
	ErrInvalidSeverity = errors.New("severity must be one of DEBUG, INFO, WARN, ERROR, FATAL")
	ErrEmptySource     = errors.New("source must be specified")
	ErrMessageTooLong  = errors.New("message must be at most 1024 characters")
	ErrSourceTooLong   = errors.New("source must be at most 256 characters")
	ErrInvalidLimit    = errors.New("limit is out of range")
	ErrInvalidOffset   = errors.New("offset must not be negative")
	ErrInvalidCount    = errors.New("count must be between 10 and 1000")
	ErrInvalidDaysBack = errors.New("days_back must be between 0 and 365")
)

// ValidateLog checks a create or update payload.
func ValidateLog(l *domain.LogEntry) error {
	if !l.Severity.Valid() {
		return ErrInvalidSeverity
	}

	if l.Source == "" {
		return ErrEmptySource
	}

	if utf8.RuneCountInString(l.Message) > domain.MaxMessageLength {
		return ErrMessageTooLong
	}

	if utf8.RuneCountInString(l.Source) > domain.MaxSourceLength {
		return ErrSourceTooLong
	}

	return nil
}

// ValidatePage checks limit against [1, maxLimit] and offset against [0, inf).
func ValidatePage(limit, offset, maxLimit int) error {
	if limit < 1 || limit > maxLimit {
		return ErrInvalidLimit
	}
	if offset < 0 {
		return ErrInvalidOffset
	}
	return nil
}

func ValidateGenerate(count, daysBack int) error {
	if count < MinGenerateCount || count > MaxGenerateCount {
		return ErrInvalidCount
	}
	if daysBack < 0 || daysBack > MaxDaysBack {
		return ErrInvalidDaysBack
	}
	return nil
}
