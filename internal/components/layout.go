package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
	BodyClass   string
	// Scripts are extra module scripts loaded at the end of the body
	Scripts     []string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Silicon Prairie - Where Golden Fields Meet Digital Futures"
	}

	if config.Description == "" {
		config.Description = "Silicon Prairie connects funders, developers, and businesses to terraform the heartland into America's next AI innovation hub."
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.svg"
	}

	if config.BodyClass == "" {
		config.BodyClass = "min-h-screen bg-background text-foreground overflow-x-hidden antialiased"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("dark scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				Link(Rel("icon"), Href("/static/images/favicon.svg"), Type("image/svg+xml")),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("/static/js/tailwind.config.js")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class(config.BodyClass),
				g.Group(content),

				g.Group(g.Map(config.Scripts, func(src string) g.Node {
					return Script(Type("module"), Src(src))
				})),
			),
		),
	})
}
