package entry

import (
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/fx"

	"github.com/RMTN1/silicon-prairie/internal/config"
	"github.com/RMTN1/silicon-prairie/internal/logger"
	"github.com/RMTN1/silicon-prairie/internal/metrics"
)

var Module = fx.Module("entry",
	fx.Provide(
		func() Scheduler { return RealScheduler{} },
		NewHub,
	),
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 512
	sendBuffer     = 16
)

// clientMessage is what the page sends over the socket
type clientMessage struct {
	Type string `json:"type"`
}

// HubParams are the dependencies for creating a Hub
type HubParams struct {
	fx.In

	Config    *config.Config
	Scheduler Scheduler
	Log       *slog.Logger
}

// Hub upgrades entry screen connections and runs one Sequence per
// connection. The sequence lives exactly as long as the socket.
type Hub struct {
	upgrader websocket.Upgrader
	sched    Scheduler
	timeline Timeline
	opts     Options
	log      *slog.Logger
}

func NewHub(p HubParams) *Hub {
	h := &Hub{
		sched:    p.Scheduler,
		timeline: DefaultTimeline(),
		opts:     Options{ExitDelay: p.Config.Entry.ExitDelay, Target: "/"},
		log:      p.Log.With(logger.Scope("entry")),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(p.Config.Entry.AllowedOrigins),
	}
	return h
}

// Timeline returns the steps every session runs
func (h *Hub) Timeline() Timeline {
	return h.timeline
}

// ExitDelay is exposed so the page fallback script matches the server
func (h *Hub) ExitDelay() time.Duration {
	return h.opts.ExitDelay
}

// originChecker returns nil for an empty allow-list, which makes the
// upgrader require Origin to match Host.
func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	return func(r *http.Request) bool {
		return slices.Contains(allowed, r.Header.Get("Origin"))
	}
}

// ServeHTTP handles one entry screen connection
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", logger.Error(err))
		return
	}

	id := uuid.NewString()
	log := h.log.With(slog.String("session", id))

	metrics.EntrySessionsActive.Inc()
	defer metrics.EntrySessionsActive.Dec()

	send := make(chan Event, sendBuffer)
	done := make(chan struct{})

	seq := NewSequence(h.sched, h.timeline, h.opts, func(e Event) {
		select {
		case send <- e:
		default:
			log.Warn("entry event dropped", slog.String("type", string(e.Type)))
		}
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.writer(conn, send, done, log)
	}()

	log.Debug("entry session opened")
	seq.Start()

	h.reader(conn, seq, log)

	seq.Stop()
	close(done)
	wg.Wait()
	_ = conn.Close()
	stage := seq.Stage()
	log.Debug("entry session closed",
		slog.String("stage", stage.String()),
		slog.Bool("revealed", stage == h.timeline.Final()),
	)
}

func (h *Hub) reader(conn *websocket.Conn, seq *Sequence, log *slog.Logger) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("entry session read error", logger.Error(err))
			}
			return
		}

		switch msg.Type {
		case "orb":
			if !seq.Exit() {
				log.Debug("orb click ignored", slog.Bool("exiting", seq.Exiting()))
				continue
			}
			metrics.EntryExits.Inc()
			log.Info("entry exit started")
		default:
			log.Debug("unknown entry message", slog.String("type", msg.Type))
		}
	}
}

func (h *Hub) writer(conn *websocket.Conn, send <-chan Event, done <-chan struct{}, log *slog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case e := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(e); err != nil {
				log.Debug("entry session write failed", logger.Error(err))
				// Unblock the reader so the session tears down.
				_ = conn.Close()
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = conn.Close()
				return
			}
		case <-done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}
