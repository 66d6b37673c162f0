package usecase

import (
	"time"

	"github.com/google/uuid"

	"smart-reminders/internal/reminder"
	"smart-reminders/pkg/ics"
	"smart-reminders/pkg/log"
	"smart-reminders/pkg/nlparse"
)

// Config holds the request guards applied around the parser.
type Config struct {
	MinPreviewLength int
	MaxBulkSegments  int // 0 disables the cap
}

// implUseCase is the private implementation of reminder.UseCase.
type implUseCase struct {
	l       log.Logger
	parser  *nlparse.Parser
	encoder *ics.Encoder
	metrics *Metrics
	cfg     Config

	clock func() time.Time
	newID func() string
}

// New creates a new reminder UseCase implementation. metrics may be nil.
func New(l log.Logger, parser *nlparse.Parser, metrics *Metrics, cfg Config) *implUseCase {
	return &implUseCase{
		l:       l,
		parser:  parser,
		encoder: ics.NewEncoder(parser.Calendar().Location()),
		metrics: metrics,
		cfg:     cfg,
		clock:   time.Now,
		newID:   uuid.NewString,
	}
}

func (uc *implUseCase) now(requested time.Time) time.Time {
	if requested.IsZero() {
		return uc.clock()
	}
	return requested
}

var _ reminder.UseCase = (*implUseCase)(nil)
