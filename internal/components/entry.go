package components

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/RMTN1/silicon-prairie/internal/entry"
	"github.com/RMTN1/silicon-prairie/internal/theme"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Stalk is one wheat stalk rising from the bottom of the entry screen
type Stalk struct {
	Left   float64 // percent
	Height float64 // vh
	Delay  float64 // seconds
	Sway   float64 // seconds per sway cycle
}

// Mote is a drifting light particle
type Mote struct {
	Left  float64 // percent
	Top   float64 // percent
	Size  float64 // px
	Delay float64 // seconds
}

type Particles struct {
	Stalks []Stalk
	Motes  []Mote
}

// NewParticles scatters stalks evenly across the width with jitter and
// motes around the center, drawing from r so tests can seed it
func NewParticles(r *rand.Rand, stalks, motes int) Particles {
	var p Particles
	for i := range stalks {
		slot := 100 / float64(max(stalks, 1))
		p.Stalks = append(p.Stalks, Stalk{
			Left:   round1(slot*float64(i) + r.Float64()*slot),
			Height: round1(12 + r.Float64()*26),
			Delay:  round1(r.Float64() * 0.8),
			Sway:   round1(3 + r.Float64()*2),
		})
	}
	for range motes {
		p.Motes = append(p.Motes, Mote{
			Left:  round1(10 + r.Float64()*80),
			Top:   round1(20 + r.Float64()*60),
			Size:  round1(1 + r.Float64()*3),
			Delay: round1(r.Float64() * 4),
		})
	}
	return p
}

func round1(v float64) float64 {
	return float64(int(v*10)) / 10
}

type EntryScreenConfig struct {
	Theme     theme.Theme
	Timeline  entry.Timeline
	ExitDelay time.Duration
	// Target is where the exit navigates, "/" when empty
	Target    string
	Socket    string
	Particles Particles
}

// EntryScreen is the standalone cinematic page. Stages are revealed by
// adding stage-N classes to #entry; the script drives them from the
// websocket or, failing that, from the embedded timeline.
func EntryScreen(config EntryScreenConfig) (g.Node, error) {
	timeline, err := json.Marshal(config.Timeline)
	if err != nil {
		return nil, fmt.Errorf("encode timeline: %w", err)
	}

	target := config.Target
	if target == "" {
		target = "/"
	}

	t := config.Theme

	return Layout(
		PageConfig{
			Title:     "Silicon Prairie",
			BodyClass: "bg-[#050508] text-white overflow-hidden antialiased",
			Scripts:   []string{"/static/js/entry.js"},
		},
		Main(
			ID("entry"),
			Class("entry relative w-full h-screen overflow-hidden bg-[#050508]"),
			g.Attr("data-theme", string(t.Name)),
			g.Attr("data-timeline", string(timeline)),
			g.Attr("data-exit-delay", strconv.FormatInt(config.ExitDelay.Milliseconds(), 10)),
			g.Attr("data-target", target),
			g.If(config.Socket != "", g.Attr("data-socket", config.Socket)),
			Style("--orb-color: "+t.Orb+"; --grid-color: "+t.Grid),

			Div(
				Class("entry-bg absolute inset-0"),
				Style("background: radial-gradient(ellipse at 50% 70%, color-mix(in srgb, "+t.Orb+" 18%, transparent) 0%, transparent 60%), linear-gradient(to bottom, #050508 0%, #0b0b14 55%, #1a1408 100%)"),
			),

			Div(
				Class("entry-grid absolute inset-0"),
				Grid(WithColor(t.Grid), WithPosition(PositionAbsolute), WithOpacity(0.9)),
			),

			Div(
				Class("entry-particles absolute inset-0 pointer-events-none"),
				g.Attr("aria-hidden", "true"),
				g.Group(g.Map(config.Particles.Stalks, stalk)),
				g.Group(g.Map(config.Particles.Motes, mote)),
			),

			Div(
				Class("absolute inset-0 flex items-center justify-center"),
				Button(
					ID("entry-orb"),
					Type("button"),
					Class("entry-orb relative h-40 w-40 rounded-full"),
					g.Attr("aria-label", "Enter Silicon Prairie"),
					g.Attr("disabled"),
					Style("background: radial-gradient(circle at 35% 35%, #ffffff 0%, "+t.Orb+" 35%, color-mix(in srgb, "+t.Orb+" 20%, transparent) 70%, transparent 100%); box-shadow: 0 0 80px "+t.Orb+", 0 0 160px color-mix(in srgb, "+t.Orb+" 40%, transparent)"),
					Span(Class("entry-orb-halo absolute -inset-6 rounded-full border"), Style("border-color: color-mix(in srgb, "+t.Orb+" 50%, transparent)")),
				),
			),

			Div(
				Class("entry-hint absolute bottom-24 left-1/2 -translate-x-1/2 text-center"),
				P(
					Class("text-white/60 text-sm md:text-base tracking-widest uppercase"),
					Span(Class("hint-idle"), g.Text("Approach the light")),
					Span(Class("hint-hover"), g.Text("Click to enter")),
				),
				P(Class("mt-2 text-white/30 text-xs tracking-widest uppercase"), g.Text(t.Label)),
				Div(
					Class("entry-links mt-6 flex gap-4 justify-center"),
					A(Href(target), Class("text-sm text-[#60a5fa] hover:underline"), g.Text("Enter")),
					A(Href("/#about"), Class("text-sm text-[#D4AF37] hover:underline"), g.Text("Explore")),
				),
			),

			Div(Class("entry-flash absolute inset-0 bg-white pointer-events-none")),

			Button(
				ID("entry-sound"),
				Type("button"),
				Class("absolute top-4 right-4 p-2 rounded-full bg-white/5 hover:bg-white/10 transition-colors text-white/40 hover:text-white/70 text-xs z-10"),
				g.Attr("aria-pressed", "false"),
				Icon("lucide:volume-x", "size-3 sound-off", ""),
				Icon("lucide:volume-2", "size-3 sound-on", ""),
				g.Text(" Sound"),
			),

			Div(
				Class("absolute top-4 left-4 flex items-center gap-2 text-white/40 text-sm z-10"),
				Img(Src("/static/images/favicon.svg"), Alt("Logo"), Class("w-6 h-6 opacity-60")),
				Span(g.Text("Silicon Prairie")),
			),

			entryFallback(target),
		),
	), nil
}

// entryFallback is what visitors without scripting get instead of the
// sequence
func entryFallback(target string) g.Node {
	return g.El("noscript",
		Div(
			Class("absolute inset-0 z-20 flex flex-col items-center justify-center gap-6 bg-[#050508] px-6 text-center"),
			H1(Class("text-4xl md:text-6xl font-bold"), Wordmark("")),
			P(Class("text-white/70 text-lg"), g.Text("Where Golden Fields Meet Digital Futures")),
			Div(
				Class("flex flex-col sm:flex-row gap-4"),
				A(Href(target), Class("rounded-md px-8 py-4 text-lg font-semibold text-white bg-[#2563eb]"), g.Text("Enter Nexus")),
				A(Href("/#about"), Class("rounded-md border border-[#D4AF37]/60 px-8 py-4 text-lg text-[#D4AF37]"), g.Text("Explore Prairie")),
			),
		),
	)
}

func stalk(s Stalk) g.Node {
	return Div(
		Class("stalk absolute bottom-0"),
		Style(fmt.Sprintf("left: %s; height: %gvh; animation-delay: %s, %s; --sway: %s", percent(s.Left), s.Height, seconds(s.Delay), seconds(s.Delay+1), seconds(s.Sway))),
	)
}

func mote(m Mote) g.Node {
	return Div(
		Class("mote absolute rounded-full"),
		Style(fmt.Sprintf("left: %s; top: %s; width: %gpx; height: %gpx; animation-delay: %s", percent(m.Left), percent(m.Top), m.Size, m.Size, seconds(m.Delay))),
	)
}
