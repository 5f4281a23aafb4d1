package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type GridPosition string

const (
	PositionFixed    GridPosition = "fixed"
	PositionAbsolute GridPosition = "absolute"
)

// GridConfig is the resolved configuration of a perspective grid
type GridConfig struct {
	Opacity  float64
	Color    string
	Position GridPosition
}

type GridOption func(*GridConfig)

// WithOpacity sets the overall opacity multiplier, clamped to [0,1]
func WithOpacity(o float64) GridOption {
	return func(c *GridConfig) {
		c.Opacity = min(max(o, 0), 1)
	}
}

// WithColor sets the line color. Any CSS color works.
func WithColor(color string) GridOption {
	return func(c *GridConfig) {
		if color != "" {
			c.Color = color
		}
	}
}

func WithPosition(p GridPosition) GridOption {
	return func(c *GridConfig) {
		switch p {
		case PositionFixed, PositionAbsolute:
			c.Position = p
		}
	}
}

// NewGridConfig applies opts over the defaults: opacity 1, brand blue,
// fixed to the viewport
func NewGridConfig(opts ...GridOption) GridConfig {
	c := GridConfig{
		Opacity:  1,
		Color:    BlueSilicon,
		Position: PositionFixed,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Grid renders a full-size receding grid whose horizon sits at the
// vertical center of its container
func Grid(opts ...GridOption) g.Node {
	c := NewGridConfig(opts...)

	plane := "position: absolute; inset: 0; transform: rotateX(75deg); transform-origin: 50% 0%; background-size: 80px 80px;"

	return Div(
		Class("perspective-grid pointer-events-none"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-position", string(c.Position)),
		Style(fmt.Sprintf("position: %s; inset: 0; z-index: 0; opacity: %s", c.Position, strconv.FormatFloat(c.Opacity, 'f', -1, 64))),

		Div(
			Style("position: absolute; top: 50%; left: 0; right: 0; bottom: 0; perspective: 600px; perspective-origin: 50% 0%"),

			Div(
				Class("grid-base"),
				Style(plane+" background-image: "+gridLines(c.Color, 33)+";"),
			),
			Div(
				Class("grid-glow animate-grid-pulse"),
				Style(plane+" background-image: "+gridLines(c.Color, 60)+"; filter: blur(1px);"),
			),
			Div(
				Class("grid-rush animate-grid-scroll"),
				Style(plane+" background-image: linear-gradient("+tint(c.Color, 27)+" 1.5px, transparent 1.5px);"),
			),
		),

		Div(
			Class("grid-horizon"),
			Style("position: absolute; top: 50%; left: 50%; transform: translate(-50%, -50%); width: 80vw; height: 120px; filter: blur(18px); background: radial-gradient(ellipse, "+tint(c.Color, 13)+" 0%, transparent 70%)"),
		),
	)
}

func gridLines(color string, pct int) string {
	t := tint(color, pct)
	return fmt.Sprintf("linear-gradient(%s 1.5px, transparent 1.5px), linear-gradient(90deg, %s 1.5px, transparent 1.5px)", t, t)
}

func tint(color string, pct int) string {
	return fmt.Sprintf("color-mix(in srgb, %s %d%%, transparent)", color, pct)
}
