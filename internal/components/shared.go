package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Brand colors
const (
	BlueSilicon = "#60a5fa"
	GoldPrairie = "#D4AF37"
)

// Icon renders an iconify icon such as "lucide:zap". An empty aria label
// hides the icon from assistive technology.
func Icon(name, sizeClasses, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

func Logo() g.Node {
	return Div(
		Class("flex items-center gap-3"),
		Div(
			Class("relative"),
			Div(
				Class("h-10 w-10 rounded-lg gradient-neon flex items-center justify-center"),
				Span(Class("font-display font-bold text-primary-foreground text-lg"), g.Text("SP")),
			),
			Div(Class("absolute inset-0 rounded-lg gradient-neon opacity-50 blur-md -z-10")),
		),
		Span(
			Class("font-display font-semibold text-xl text-foreground"),
			g.Text("Silicon"),
			Span(Class("text-gradient-neon"), g.Text("Prairie")),
		),
	)
}

// Wordmark is the two-tone brand name used in the footer and entry screen
func Wordmark(classes string) g.Node {
	return Span(
		Class(classes),
		Span(Style("color: "+BlueSilicon), g.Text("Silicon")),
		g.Text(" "),
		Span(Style("color: "+GoldPrairie), g.Text("Prairie")),
	)
}

// seconds formats an animation delay for inline styles
func seconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64) + "s"
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
