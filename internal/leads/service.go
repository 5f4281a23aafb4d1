package leads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/RMTN1/silicon-prairie/internal/apperror"
	"github.com/RMTN1/silicon-prairie/internal/config"
	"github.com/RMTN1/silicon-prairie/internal/content"
	"github.com/RMTN1/silicon-prairie/internal/logger"
	"github.com/RMTN1/silicon-prairie/internal/metrics"
)

var Module = fx.Module("leads",
	fx.Provide(
		func() Sleeper { return TimerSleeper{} },
		NewService,
		NewLimiterFromConfig,
	),
)

// Sleeper waits for d or until ctx is done
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper sleeps on a real timer
type TimerSleeper struct{}

func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receipt describes an accepted lead
type Receipt struct {
	ID         uuid.UUID
	Role       string
	AcceptedAt time.Time
}

// ServiceParams are the dependencies for creating a Service
type ServiceParams struct {
	fx.In

	Config  *config.Config
	Site    *content.Site
	Sleeper Sleeper
	Log     *slog.Logger
}

// Service runs simulated lead submissions
type Service struct {
	delay   time.Duration
	roles   []string
	sleeper Sleeper
	now     func() time.Time
	log     *slog.Logger
}

func NewService(p ServiceParams) *Service {
	return &Service{
		delay:   p.Config.Leads.SubmitDelay,
		roles:   p.Site.RoleValues(),
		sleeper: p.Sleeper,
		now:     time.Now,
		log:     p.Log.With(logger.Scope("leads")),
	}
}

// NewForm returns a fresh form accepting the configured roles. Every
// transition is logged at debug level.
func (s *Service) NewForm() *Form {
	f := NewForm(s.roles)
	f.OnChange(func(from, to State) {
		s.log.Debug("lead form transition",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})
	return f
}

// Submit drives form through Submitting to Submitted, waiting the
// simulated delay in between. Validation failures leave the form Idle.
func (s *Service) Submit(ctx context.Context, form *Form, sub Submission) (Receipt, error) {
	if err := form.Begin(sub); err != nil {
		if errors.Is(err, ErrMissingInformation) || errors.Is(err, ErrUnknownRole) {
			metrics.LeadSubmissions.WithLabelValues(metrics.ResultRejected).Inc()
			s.log.Info("lead rejected", slog.String("reason", apperror.As(err).Code))
		}
		return Receipt{}, err
	}

	if err := s.sleeper.Sleep(ctx, s.delay); err != nil {
		form.Abort()
		metrics.LeadSubmissions.WithLabelValues(metrics.ResultCanceled).Inc()
		return Receipt{}, fmt.Errorf("lead submission interrupted: %w", err)
	}

	if err := form.Complete(); err != nil {
		return Receipt{}, err
	}

	values := form.Values()
	receipt := Receipt{
		ID:         uuid.New(),
		Role:       values.Role,
		AcceptedAt: s.now(),
	}

	metrics.LeadSubmissions.WithLabelValues(metrics.ResultAccepted).Inc()
	metrics.LeadsByRole.WithLabelValues(receipt.Role).Inc()
	s.log.Info("lead accepted",
		slog.String("receipt", receipt.ID.String()),
		slog.String("role", receipt.Role),
		slog.String("email_domain", emailDomain(values.Email)),
	)

	return receipt, nil
}

// emailDomain keeps addresses out of the logs
func emailDomain(email string) string {
	if i := strings.LastIndexByte(email, '@'); i >= 0 && i < len(email)-1 {
		return email[i+1:]
	}
	return ""
}
