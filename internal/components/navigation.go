package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	label string
	href  string
}

var navLinks = []navLink{
	{"Network", "#hero"},
	{"Mission", "#about"},
	{"Join", "#join"},
}

func Navigation() g.Node {
	return Nav(
		Class("fixed top-0 left-0 right-0 z-50 px-6 py-4 animate-slide-down"),
		Div(
			Class("mx-auto max-w-7xl"),
			Div(
				Class("glass-card rounded-full px-6 py-3 flex items-center justify-between"),

				A(Href("/"), Class("transition-transform hover:scale-[1.02]"), Logo()),

				Div(
					Class("hidden md:flex items-center gap-8"),
					g.Group(g.Map(navLinks, func(l navLink) g.Node {
						return A(
							Href(l.href),
							Class("text-foreground/80 hover:text-primary transition-colors link-glow"),
							g.Text(l.label),
						)
					})),
				),

				A(
					Href("/enter"),
					Class("group inline-flex items-center rounded-md border border-primary/50 px-4 py-2 text-sm font-medium text-primary hover:bg-primary hover:text-primary-foreground transition-all duration-300"),
					Icon("lucide:user", "size-4 mr-2 group-hover:scale-110 transition-transform", ""),
					g.Text("Client Portal"),
				),
			),
		),
	)
}
