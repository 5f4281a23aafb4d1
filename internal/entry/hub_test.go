package entry

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMTN1/silicon-prairie/internal/config"
	"github.com/RMTN1/silicon-prairie/internal/metrics"
)

func newTestHub(t *testing.T, origins []string) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(HubParams{
		Config: &config.Config{Entry: config.EntryConfig{
			ExitDelay:      20 * time.Millisecond,
			AllowedOrigins: origins,
		}},
		Scheduler: RealScheduler{},
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	hub.timeline = Timeline{
		{Delay: 0, Stage: StageGrid},
		{Delay: 20 * time.Millisecond, Stage: StageBackground},
		{Delay: 40 * time.Millisecond, Stage: StageParticles},
		{Delay: 60 * time.Millisecond, Stage: StageOrb},
		{Delay: 80 * time.Millisecond, Stage: StageHint},
	}

	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)
	return hub, srv
}

// syncBuffer collects log output written from the server goroutines
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// newFakeClockHub serves a hub with the default timeline whose timers
// only fire when the test advances sched
func newFakeClockHub(t *testing.T) (*httptest.Server, *fakeScheduler, *syncBuffer) {
	t.Helper()
	sched := &fakeScheduler{}
	logs := &syncBuffer{}
	hub := NewHub(HubParams{
		Config:    &config.Config{Entry: config.EntryConfig{ExitDelay: 1200 * time.Millisecond}},
		Scheduler: sched,
		Log:       slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})

	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)
	return srv, sched, logs
}

func dial(t *testing.T, srv *httptest.Server, origin string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var e Event
	require.NoError(t, conn.ReadJSON(&e))
	return e
}

func TestHub_CloseTearsDownSession(t *testing.T) {
	// Runs before any other socket test so the shared gauge is not
	// moved by sessions still closing elsewhere.
	srv, sched, logs := newFakeClockHub(t)
	before := testutil.ToFloat64(metrics.EntrySessionsActive)

	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return sched.Pending() == len(DefaultTimeline()) },
		2*time.Second, 5*time.Millisecond, "session should schedule every step")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.EntrySessionsActive))

	sched.Advance(300 * time.Millisecond)
	assert.Equal(t, Event{Type: EventStage, Stage: StageGrid}, readEvent(t, conn))

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.EntrySessionsActive) == before
	}, 2*time.Second, 5*time.Millisecond, "active session gauge should return to its starting value")
	assert.Equal(t, 0, sched.Pending(), "closing the socket should cancel the remaining steps")
	assert.Contains(t, logs.String(), "stage=grid revealed=false")
}

func TestHub_FullSequence(t *testing.T) {
	_, srv := newTestHub(t, nil)
	conn := dial(t, srv, "")

	var stages []Stage
	for len(stages) < 5 {
		e := readEvent(t, conn)
		require.Equal(t, EventStage, e.Type)
		stages = append(stages, e.Stage)
	}
	assert.Equal(t, []Stage{StageGrid, StageBackground, StageParticles, StageOrb, StageHint}, stages)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "orb"}))
	require.NoError(t, conn.WriteJSON(clientMessage{Type: "orb"}))

	assert.Equal(t, Event{Type: EventExit}, readEvent(t, conn))
	assert.Equal(t, Event{Type: EventNavigate, Href: "/"}, readEvent(t, conn))

	// The second click produced nothing.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	var extra Event
	err := conn.ReadJSON(&extra)
	assert.Error(t, err)
}

func TestHub_IgnoredOrbClicksAreLogged(t *testing.T) {
	srv, sched, logs := newFakeClockHub(t)
	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return sched.Pending() == len(DefaultTimeline()) },
		2*time.Second, 5*time.Millisecond)

	sched.Advance(300 * time.Millisecond)
	assert.Equal(t, StageGrid, readEvent(t, conn).Stage)

	// Too early: the orb is not visible yet.
	require.NoError(t, conn.WriteJSON(clientMessage{Type: "orb"}))
	require.Eventually(t, func() bool { return strings.Contains(logs.String(), "exiting=false") },
		2*time.Second, 5*time.Millisecond)

	sched.Advance(3300 * time.Millisecond)
	for _, want := range []Stage{StageBackground, StageParticles, StageOrb, StageHint} {
		assert.Equal(t, want, readEvent(t, conn).Stage)
	}

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "orb"}))
	require.NoError(t, conn.WriteJSON(clientMessage{Type: "orb"}))
	assert.Equal(t, Event{Type: EventExit}, readEvent(t, conn))
	require.Eventually(t, func() bool { return strings.Contains(logs.String(), "exiting=true") },
		2*time.Second, 5*time.Millisecond, "second click should be ignored while exiting")

	sched.Advance(1200 * time.Millisecond)
	assert.Equal(t, Event{Type: EventNavigate, Href: "/"}, readEvent(t, conn))

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return strings.Contains(logs.String(), "stage=hint revealed=true") },
		2*time.Second, 5*time.Millisecond)
	assert.Contains(t, logs.String(), `msg="orb click ignored"`)
}

func TestHub_RejectsForeignOrigin(t *testing.T) {
	_, srv := newTestHub(t, []string{"https://siliconprairie.ai"})

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHub_AllowsListedOrigin(t *testing.T) {
	_, srv := newTestHub(t, []string{"https://siliconprairie.ai"})
	conn := dial(t, srv, "https://siliconprairie.ai")
	assert.Equal(t, EventStage, readEvent(t, conn).Type)
}

func TestHub_PlainHTTPIsRejected(t *testing.T) {
	_, srv := newTestHub(t, nil)
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOriginChecker(t *testing.T) {
	assert.Nil(t, originChecker(nil))

	check := originChecker([]string{"https://a.example"})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://a.example")
	assert.True(t, check(req))
	req.Header.Set("Origin", "https://b.example")
	assert.False(t, check(req))
}
