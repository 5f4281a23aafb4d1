package handlers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"
	g "maragu.dev/gomponents"

	"github.com/RMTN1/silicon-prairie/internal/apperror"
	"github.com/RMTN1/silicon-prairie/internal/components"
	"github.com/RMTN1/silicon-prairie/internal/config"
	"github.com/RMTN1/silicon-prairie/internal/content"
	"github.com/RMTN1/silicon-prairie/internal/entry"
	"github.com/RMTN1/silicon-prairie/internal/leads"
	"github.com/RMTN1/silicon-prairie/internal/logger"
	"github.com/RMTN1/silicon-prairie/internal/metrics"
	"github.com/RMTN1/silicon-prairie/internal/theme"
)

var Module = fx.Module("handlers",
	fx.Provide(NewPages),
)

const (
	entryStalks = 24
	entryMotes  = 40
)

// JoinedPath is where a successful submission lands
const JoinedPath = "/?joined=1#join"

// PagesParams are the dependencies for creating Pages
type PagesParams struct {
	fx.In

	Config  *config.Config
	Site    *content.Site
	Leads   *leads.Service
	Limiter *leads.Limiter
	Hub     *entry.Hub
	Clock   theme.Clock
	Log     *slog.Logger
}

// Pages renders the landing page, handles the join form and renders the
// entry screen
type Pages struct {
	site    *content.Site
	leads   *leads.Service
	limiter *leads.Limiter
	hub     *entry.Hub
	clock   theme.Clock
	loc     *time.Location
	log     *slog.Logger
}

func NewPages(p PagesParams) *Pages {
	return &Pages{
		site:    p.Site,
		leads:   p.Leads,
		limiter: p.Limiter,
		hub:     p.Hub,
		clock:   p.Clock,
		loc:     p.Config.Location(),
		log:     p.Log.With(logger.Scope("pages")),
	}
}

// Landing renders the root page. ?joined=1 is the redirect target after
// a successful submission and shows the confirmation.
func (p *Pages) Landing(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("joined") == "1" {
		p.renderLanding(w, http.StatusOK, components.JoinState{Submitted: true}, components.Notice{
			Title:       "Welcome to Silicon Prairie!",
			Description: "We'll be in touch soon with next steps.",
		})
		return
	}
	p.renderLanding(w, http.StatusOK, components.JoinState{})
}

// Join handles the lead form post
func (p *Pages) Join(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		p.rejectJoin(w, components.JoinState{}, apperror.ErrBadRequest.WithInternal(err))
		return
	}

	sub := leads.Submission{
		Email: r.PostFormValue("email"),
		Role:  r.PostFormValue("role"),
	}.Normalize()
	state := components.JoinState{Email: sub.Email, Role: sub.Role}

	// Only valid submissions spend a token; correcting a rejected form
	// is never limited.
	form := p.leads.NewForm()
	if form.Validate(sub) == nil && !p.limiter.Allow(clientIP(r)) {
		metrics.LeadSubmissions.WithLabelValues(metrics.ResultRateLimited).Inc()
		p.rejectJoin(w, state, apperror.ErrRateLimited.WithMessage("Too many submissions from your network. Try again in a minute."))
		return
	}

	if _, err := p.leads.Submit(r.Context(), form, sub); err != nil {
		if errors.Is(err, context.Canceled) {
			p.log.Debug("join abandoned by client")
			return
		}
		p.rejectJoin(w, state, err)
		return
	}

	http.Redirect(w, r, JoinedPath, http.StatusSeeOther)
}

// rejectJoin re-renders the landing page with the entered values and a
// destructive toast describing err
func (p *Pages) rejectJoin(w http.ResponseWriter, state components.JoinState, err error) {
	appErr := apperror.As(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		p.log.Error("join failed", logger.Error(err))
	}

	p.renderLanding(w, appErr.HTTPStatus, state, components.Notice{
		Title:       noticeTitle(appErr),
		Description: appErr.Message,
		Variant:     components.ToastDestructive,
	})
}

func noticeTitle(err *apperror.Error) string {
	switch {
	case errors.Is(err, leads.ErrMissingInformation):
		return "Missing Information"
	case errors.Is(err, leads.ErrUnknownRole):
		return "Unknown Role"
	case errors.Is(err, apperror.ErrRateLimited):
		return "Slow down"
	case errors.Is(err, apperror.ErrBadRequest):
		return "Invalid Request"
	default:
		return "Something went wrong"
	}
}

func (p *Pages) renderLanding(w http.ResponseWriter, status int, state components.JoinState, notices ...components.Notice) {
	page := components.Layout(
		components.PageConfig{
			Scripts: []string{"/static/js/join.js"},
		},
		components.Grid(components.WithOpacity(0.35)),
		components.Navigation(),
		g.El("main",
			g.Attr("class", "relative z-10"),
			components.Hero(p.site.Hero),
			components.About(p.site.About),
			components.Join(p.site.Join, state),
		),
		components.PageFooter(p.site, p.clock.Now().In(p.loc).Year()),
		components.Toasts(notices...),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = page.Render(w)
}

// Entry renders the cinematic entry screen in the theme for the current
// local hour
func (p *Pages) Entry(w http.ResponseWriter, r *http.Request) {
	t := theme.Current(p.clock, p.loc)
	metrics.EntryThemes.WithLabelValues(string(t.Name)).Inc()

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	page, err := components.EntryScreen(components.EntryScreenConfig{
		Theme:     t,
		Timeline:  p.hub.Timeline(),
		ExitDelay: p.hub.ExitDelay(),
		Socket:    "/enter/ws",
		Particles: components.NewParticles(rng, entryStalks, entryMotes),
	})
	if err != nil {
		apperror.WriteJSON(w, p.log, apperror.ErrInternal.WithInternal(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = page.Render(w)
}

// NotFound answers unknown paths with the JSON error body
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	apperror.WriteJSON(w, p.log, apperror.ErrNotFound)
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// clientIP strips the port from RemoteAddr. chi's RealIP middleware has
// already replaced it with the forwarded address when one is present.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
