package components

import (
	"github.com/RMTN1/silicon-prairie/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(hero content.Hero) g.Node {
	return Section(
		ID("hero"),
		Class("relative min-h-screen overflow-hidden"),

		Div(
			Class("absolute inset-0"),
			Img(
				Src(hero.Image),
				Alt("Digital Prairie"),
				Class("w-full h-full object-cover object-center"),
			),
			Div(Class("absolute inset-0 gradient-hero-overlay")),
			Div(Class("absolute inset-0 grid-overlay opacity-50")),
			Div(
				Class("absolute inset-0 overflow-hidden pointer-events-none"),
				Div(Class("scan-line absolute left-0 right-0 h-px bg-gradient-to-r from-transparent via-primary/50 to-transparent")),
			),
		),

		Div(
			Class("absolute inset-0 top-32"),
			g.Group(g.Map(hero.Nodes, NodeMarker)),
			connections(hero.Lines),
		),

		Div(
			Class("relative z-10 flex flex-col items-center justify-end min-h-screen pb-24 px-6"),
			Div(
				Class("text-center max-w-4xl animate-fade-up"),
				Style("animation-delay: 0.3s"),

				Div(
					Class("inline-flex items-center gap-2 glass-card px-4 py-2 rounded-full mb-8"),
					Icon("lucide:zap", "size-4 text-primary", ""),
					Span(Class("text-sm font-medium text-foreground/80"), g.Text(hero.Badge)),
				),

				H1(
					Class("font-display text-5xl md:text-7xl font-bold mb-6 leading-tight"),
					Span(Class("text-foreground"), g.Text("Where ")),
					Span(Style("color: "+GoldPrairie), g.Text("Golden Fields")),
					Br(),
					Span(Class("text-foreground"), g.Text("Meet ")),
					Span(Style("color: "+BlueSilicon), g.Text("Digital Futures")),
				),

				P(
					Class("text-lg md:text-xl text-muted-foreground max-w-2xl mx-auto mb-10"),
					g.Text("Silicon Prairie connects funders, developers, and businesses to terraform the heartland into America's next AI innovation hub."),
				),

				Div(
					Class("flex flex-col sm:flex-row gap-4 justify-center"),
					A(
						Href("#join"),
						Class("inline-flex items-center justify-center rounded-md bg-[#60a5fa] text-white font-semibold px-8 py-4 text-lg hover:opacity-90 transition-opacity"),
						g.Text("Join the Network"),
					),
					A(
						Href("#about"),
						Class("inline-flex items-center justify-center rounded-md border border-white/20 text-white px-8 py-4 text-lg hover:bg-white/5 transition-colors"),
						g.Text("Explore the Mission"),
					),
				),
			),
		),
	)
}

// connections draws the lines between nodes. pathLength normalises every
// line to 1 so a single keyframe can draw them regardless of length.
func connections(lines []content.Line) g.Node {
	return g.El("svg",
		Class("absolute inset-0 pointer-events-none"),
		Style("width: 100%; height: 100%"),
		g.Attr("aria-hidden", "true"),
		g.El("defs",
			g.El("linearGradient",
				ID("lineGradient"),
				g.Attr("x1", "0%"), g.Attr("y1", "0%"), g.Attr("x2", "100%"), g.Attr("y2", "0%"),
				g.El("stop", g.Attr("offset", "0%"), g.Attr("stop-color", "hsl(185 100% 50% / 0.1)")),
				g.El("stop", g.Attr("offset", "50%"), g.Attr("stop-color", "hsl(185 100% 50% / 0.3)")),
				g.El("stop", g.Attr("offset", "100%"), g.Attr("stop-color", "hsl(185 100% 50% / 0.1)")),
			),
		),
		g.Group(g.Map(lines, func(l content.Line) g.Node {
			return g.El("line",
				Class("connection-line"),
				g.Attr("x1", percent(l.X1)), g.Attr("y1", percent(l.Y1)),
				g.Attr("x2", percent(l.X2)), g.Attr("y2", percent(l.Y2)),
				g.Attr("stroke", "url(#lineGradient)"),
				g.Attr("stroke-width", "1"),
				g.Attr("pathLength", "1"),
				Style("animation-delay: "+seconds(l.Delay)),
			)
		})),
	)
}
