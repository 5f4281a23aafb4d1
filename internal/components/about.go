package components

import (
	"github.com/RMTN1/silicon-prairie/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func About(about content.About) g.Node {
	return Section(
		ID("about"),
		Class("relative py-32 overflow-hidden"),

		Div(Class("absolute inset-0 bg-prairie-deep")),
		Div(Class("absolute inset-0 grid-overlay opacity-20")),
		Div(Class("absolute top-0 left-1/4 w-96 h-96 bg-primary/10 rounded-full blur-3xl")),
		Div(Class("absolute bottom-0 right-1/4 w-80 h-80 bg-secondary/10 rounded-full blur-3xl")),

		Div(
			Class("relative container mx-auto px-6"),

			Div(
				Class("text-center max-w-3xl mx-auto mb-20 reveal"),
				Span(Class("inline-block text-primary font-medium mb-4 tracking-wider uppercase text-sm"), g.Text("Our Mission")),
				H2(
					Class("font-display text-4xl md:text-5xl font-bold mb-6"),
					Span(Class("text-foreground"), g.Text("Terraforming the ")),
					Span(Class("text-gradient-wheat"), g.Text("Midwest")),
					Span(Class("text-foreground"), g.Text(" with ")),
					Span(Class("text-gradient-neon"), g.Text("AI")),
				),
				P(
					Class("text-lg text-muted-foreground leading-relaxed"),
					g.Text("For too long, the heartland has been overlooked by the tech revolution. Silicon Prairie is changing that narrative, one neural network at a time. We're not just bringing AI to Nebraska; we're cultivating a new kind of innovation that grows from the ground up."),
				),
			),

			Div(
				Class("grid md:grid-cols-2 gap-6 max-w-5xl mx-auto"),
				g.Group(g.Map(about.Features, featureCard)),
			),

			Div(
				Class("mt-20 glass-card rounded-2xl p-8 md:p-12 max-w-4xl mx-auto reveal"),
				Div(
					Class("grid grid-cols-3 gap-8 text-center"),
					g.Group(g.Map(about.Stats, statBlock)),
				),
			),
		),
	)
}

func featureCard(f content.Feature) g.Node {
	return Div(
		Class("group reveal"),
		Div(
			Class("glass-card rounded-2xl p-8 h-full transition-all duration-500 hover:border-primary/30"),
			Div(
				Class("relative mb-6 inline-block"),
				Div(
					Class("h-14 w-14 rounded-xl gradient-neon flex items-center justify-center group-hover:shadow-glow-cyan transition-shadow duration-500"),
					Icon(f.Icon, "size-7 text-primary-foreground", ""),
				),
				Div(Class("absolute inset-0 rounded-xl gradient-neon opacity-0 group-hover:opacity-50 blur-xl transition-opacity duration-500")),
			),
			H3(
				Class("font-display text-xl font-semibold mb-3 text-foreground group-hover:text-primary transition-colors duration-300"),
				g.Text(f.Title),
			),
			P(Class("text-muted-foreground leading-relaxed"), g.Text(f.Description)),
		),
	)
}

func statBlock(s content.Stat) g.Node {
	gradient := "text-gradient-neon"
	if s.Accent == "wheat" {
		gradient = "text-gradient-wheat"
	}

	return Div(
		Div(Class("font-display text-4xl md:text-5xl font-bold mb-2 "+gradient), g.Text(s.Value)),
		Div(Class("text-muted-foreground text-sm md:text-base"), g.Text(s.Label)),
	)
}
