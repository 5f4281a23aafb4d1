package components

import (
	"github.com/RMTN1/silicon-prairie/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NodeVariant is the fixed visual treatment for one participant category
type NodeVariant struct {
	Category content.Category
	Label    string
	Icon     string
	Gradient string
	Glow     string
	Ring     string
}

var nodeVariants = map[content.Category]NodeVariant{
	content.Funder: {
		Category: content.Funder,
		Label:    "Funder",
		Icon:     "lucide:dollar-sign",
		Gradient: "from-secondary to-wheat-amber",
		Glow:     "shadow-glow-gold",
		Ring:     "border-secondary",
	},
	content.Developer: {
		Category: content.Developer,
		Label:    "Developer",
		Icon:     "lucide:code",
		Gradient: "from-primary to-neon-blue",
		Glow:     "shadow-glow-cyan",
		Ring:     "border-primary",
	},
	content.Business: {
		Category: content.Business,
		Label:    "Business",
		Icon:     "lucide:building-2",
		Gradient: "from-accent to-neon-purple",
		Glow:     "shadow-glow-purple",
		Ring:     "border-accent",
	},
}

// VariantFor returns the variant for c. Unknown categories get the
// developer treatment; content validation keeps them out of real pages.
func VariantFor(c content.Category) NodeVariant {
	if v, ok := nodeVariants[c]; ok {
		return v
	}
	return nodeVariants[content.Developer]
}

// NodeMarker is a positioned network node. Hover state is pure CSS: the
// ripples, ring growth and label all hang off the "group" class.
func NodeMarker(n content.Node) g.Node {
	v := VariantFor(n.Category)
	gradient := "bg-gradient-to-br " + v.Gradient

	return Div(
		Class("node-marker group absolute cursor-pointer animate-spring-in"),
		g.Attr("data-category", string(v.Category)),
		g.Attr("tabindex", "0"),
		g.Attr("aria-label", v.Label+": "+n.Label),
		Style("left: "+percent(n.X)+"; top: "+percent(n.Y)+"; animation-delay: "+seconds(n.Delay)),

		Div(Class("node-ripple absolute inset-0 rounded-full opacity-0 group-hover:animate-ripple "+gradient)),
		Div(Class("node-ripple absolute inset-0 rounded-full opacity-0 group-hover:animate-ripple-slow "+gradient)),

		Div(Class("absolute -inset-3 rounded-full border-2 opacity-30 transition-all duration-300 group-hover:scale-[1.3] group-hover:opacity-60 "+v.Ring)),

		Div(
			Class("relative h-14 w-14 rounded-full flex items-center justify-center transition-transform duration-300 group-hover:scale-[1.2] "+gradient+" "+v.Glow),
			Icon(v.Icon, "size-6 text-primary-foreground", ""),
			Div(Class("absolute inset-0 rounded-full animate-node-pulse "+gradient)),
		),

		Div(
			Class("node-label absolute left-1/2 -translate-x-1/2 -bottom-12 whitespace-nowrap opacity-0 -translate-y-2.5 transition-all duration-200 group-hover:opacity-100 group-hover:translate-y-0 group-focus:opacity-100 group-focus:translate-y-0"),
			Div(
				Class("glass-card px-3 py-1.5 rounded-full"),
				Span(Class("text-xs font-medium text-foreground"), g.Text(v.Label)),
				Span(Class("text-xs text-muted-foreground ml-1"), g.Text("• "+n.Label)),
			),
		),
	)
}
