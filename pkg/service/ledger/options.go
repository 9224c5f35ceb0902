package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Option configures a Service.
type Option func(*Service)

// WithOverdraft sets whether a transfer may leave the source balance
// negative. Overdraft is allowed by default.
func WithOverdraft(allow bool) Option {
	return func(s *Service) {
		s.allowOverdraft = allow
	}
}

// WithClock sets the source of transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the source of transaction ids.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}
