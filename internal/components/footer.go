package components

import (
	"strconv"

	"github.com/RMTN1/silicon-prairie/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(site *content.Site, year int) g.Node {
	return Footer(
		Class("relative py-16 border-t border-border/30"),
		Div(Class("absolute inset-0 bg-prairie-deep")),

		Div(
			Class("relative container mx-auto px-6"),
			Div(
				Class("max-w-6xl mx-auto"),
				Div(
					Class("grid md:grid-cols-4 gap-10 mb-12"),

					Div(
						Class("md:col-span-2"),
						Div(
							Class("flex items-center gap-3 mb-4"),
							Img(Src("/static/images/favicon.svg"), Alt("Wheat Logo"), Class("h-10 w-10 object-contain")),
							Wordmark("font-display font-semibold text-xl"),
						),
						P(Class("text-muted-foreground mb-6 max-w-md"), g.Text(site.Brand.Blurb)),
						Div(
							Class("flex items-center gap-2 text-muted-foreground"),
							Icon("lucide:map-pin", "size-4 text-primary", ""),
							Span(g.Text(site.Brand.Location)),
						),
					),

					Div(
						H4(Class("font-display font-semibold text-foreground mb-4"), g.Text("Network")),
						Ul(
							Class("space-y-3"),
							g.Group(g.Map(site.Footer.Network, func(l content.Link) g.Node {
								return Li(A(Href(l.Href), Class("text-muted-foreground hover:text-primary transition-colors link-glow"), g.Text(l.Label)))
							})),
						),
					),

					Div(
						H4(Class("font-display font-semibold text-foreground mb-4"), g.Text("Connect")),
						Ul(
							Class("space-y-3"),
							Li(
								A(
									Href("mailto:"+site.Brand.Email),
									Class("flex items-center gap-2 text-muted-foreground hover:text-primary transition-colors"),
									Icon("lucide:mail", "size-4", ""),
									g.Text(site.Brand.Email),
								),
							),
							Li(
								Class("flex gap-4 pt-2"),
								g.Group(g.Map(site.Footer.Social, func(l content.Link) g.Node {
									return A(
										Href(l.Href),
										Class("text-muted-foreground hover:text-primary transition-colors"),
										Icon(l.Icon, "size-5", l.Label),
									)
								})),
							),
						),
					),
				),

				Div(
					Class("pt-8 border-t border-border/30 flex flex-col md:flex-row justify-between items-center gap-4"),
					P(
						Class("text-sm text-muted-foreground"),
						g.Text("© "+strconv.Itoa(year)+" "+site.Brand.Name+". All rights reserved."),
					),
					Div(
						Class("flex gap-6 text-sm"),
						A(Href("#"), Class("text-muted-foreground hover:text-primary transition-colors"), g.Text("Privacy Policy")),
						A(Href("#"), Class("text-muted-foreground hover:text-primary transition-colors"), g.Text("Terms of Service")),
					),
				),
			),
		),
	)
}
