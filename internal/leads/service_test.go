package leads

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMTN1/silicon-prairie/internal/config"
	"github.com/RMTN1/silicon-prairie/internal/content"
	"github.com/RMTN1/silicon-prairie/internal/metrics"
)

// recordingSleeper returns immediately and records what it was asked to do
type recordingSleeper struct {
	calls []time.Duration
	err   error
	// observe runs during the sleep, while the form is submitting
	observe func()
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.calls = append(s.calls, d)
	if s.observe != nil {
		s.observe()
	}
	return s.err
}

func newTestService(t *testing.T, sleeper Sleeper) *Service {
	t.Helper()
	site, err := content.Load()
	require.NoError(t, err)

	return NewService(ServiceParams{
		Config:  &config.Config{Leads: config.LeadsConfig{SubmitDelay: 1500 * time.Millisecond}},
		Site:    site,
		Sleeper: sleeper,
		Log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestService_Submit_Accepted(t *testing.T) {
	sleeper := &recordingSleeper{}
	svc := newTestService(t, sleeper)
	form := svc.NewForm()
	sleeper.observe = func() {
		assert.Equal(t, Submitting, form.State(), "form should be submitting during the delay")
	}

	before := testutil.ToFloat64(metrics.LeadSubmissions.WithLabelValues(metrics.ResultAccepted))

	receipt, err := svc.Submit(context.Background(), form, Submission{Email: "ada@prairie.dev", Role: "developer"})
	require.NoError(t, err)

	assert.Equal(t, Submitted, form.State())
	assert.Equal(t, "developer", receipt.Role)
	assert.NotEqual(t, uuid.Nil, receipt.ID)
	assert.Equal(t, []time.Duration{1500 * time.Millisecond}, sleeper.calls)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.LeadSubmissions.WithLabelValues(metrics.ResultAccepted)))
}

func TestService_NewForm_LogsTransitions(t *testing.T) {
	site, err := content.Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	svc := NewService(ServiceParams{
		Config:  &config.Config{},
		Site:    site,
		Sleeper: &recordingSleeper{},
		Log:     slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})

	_, err = svc.Submit(context.Background(), svc.NewForm(), Submission{Email: "ada@prairie.dev", Role: "funder"})
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, `msg="lead form transition"`)
	assert.Contains(t, logs, "from=idle to=submitting")
	assert.Contains(t, logs, "from=submitting to=submitted")
}

func TestService_Submit_RejectedSkipsDelay(t *testing.T) {
	sleeper := &recordingSleeper{}
	svc := newTestService(t, sleeper)
	form := svc.NewForm()

	before := testutil.ToFloat64(metrics.LeadSubmissions.WithLabelValues(metrics.ResultRejected))

	_, err := svc.Submit(context.Background(), form, Submission{Email: "ada@prairie.dev"})
	assert.ErrorIs(t, err, ErrMissingInformation)
	assert.Equal(t, Idle, form.State())
	assert.Empty(t, sleeper.calls)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.LeadSubmissions.WithLabelValues(metrics.ResultRejected)))
}

func TestService_Submit_CanceledReturnsToIdle(t *testing.T) {
	sleeper := &recordingSleeper{err: context.Canceled}
	svc := newTestService(t, sleeper)
	form := svc.NewForm()

	_, err := svc.Submit(context.Background(), form, Submission{Email: "ada@prairie.dev", Role: "funder"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Idle, form.State())
}

func TestService_Submit_SecondSubmitIgnored(t *testing.T) {
	svc := newTestService(t, &recordingSleeper{})
	form := svc.NewForm()
	sub := Submission{Email: "ada@prairie.dev", Role: "business"}

	_, err := svc.Submit(context.Background(), form, sub)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), form, sub)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, Submitted, form.State())
}

func TestTimerSleeper(t *testing.T) {
	var s TimerSleeper
	assert.NoError(t, s.Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Sleep(ctx, time.Hour), context.Canceled)
}

func TestEmailDomain(t *testing.T) {
	assert.Equal(t, "prairie.dev", emailDomain("ada@prairie.dev"))
	assert.Equal(t, "", emailDomain("no-at-sign"))
	assert.Equal(t, "", emailDomain("trailing@"))
}
