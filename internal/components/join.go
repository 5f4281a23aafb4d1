package components

import (
	"github.com/RMTN1/silicon-prairie/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// JoinState is what the join section needs from the current request:
// the values to echo back after a rejected submission, or the
// confirmation after a successful one
type JoinState struct {
	Email     string
	Role      string
	Submitted bool
}

func Join(join content.Join, state JoinState) g.Node {
	return Section(
		ID("join"),
		Class("relative py-32 overflow-hidden"),

		Div(Class("absolute inset-0 bg-background")),
		Div(Class("absolute inset-0 grid-overlay opacity-10")),
		Div(Class("absolute top-20 right-1/4 w-80 h-80 bg-primary/5 rounded-full blur-3xl animate-drift")),
		Div(Class("absolute bottom-20 left-1/4 w-96 h-96 bg-secondary/5 rounded-full blur-3xl animate-drift-slow")),

		Div(
			Class("relative container mx-auto px-6"),
			Div(
				Class("max-w-4xl mx-auto"),
				Div(
					Class("grid lg:grid-cols-2 gap-12 items-center"),

					Div(
						Class("reveal"),
						Span(Class("inline-block text-primary font-medium mb-4 tracking-wider uppercase text-sm"), g.Text("Join the Network")),
						H2(
							Class("font-display text-4xl md:text-5xl font-bold mb-6 leading-tight"),
							Span(Class("text-foreground"), g.Text("Become a Node in the ")),
							Span(Class("text-gradient-neon"), g.Text("Network")),
						),
						P(
							Class("text-lg text-muted-foreground mb-8 leading-relaxed"),
							g.Text("The grid is growing. Whether you are a Funder, Developer, or Business, connect to the Silicon Prairie ecosystem here."),
						),
						Div(
							Class("space-y-4"),
							g.Group(g.Map(join.Benefits, func(b string) g.Node {
								return Div(
									Class("flex items-center gap-3"),
									Icon("lucide:check-circle-2", "size-5 text-primary flex-shrink-0", ""),
									Span(Class("text-foreground/80"), g.Text(b)),
								)
							})),
						),
					),

					Div(
						Class("reveal"),
						Div(
							Class("glass-card rounded-2xl p-8 md:p-10"),
							g.If(state.Submitted, joinConfirmation()),
							g.If(!state.Submitted, joinForm(join.Roles, state)),
						),
					),
				),
			),
		),
	)
}

func joinConfirmation() g.Node {
	return Div(
		Class("text-center py-8 animate-spring-in"),
		g.Attr("data-join-state", "submitted"),
		Div(
			Class("h-20 w-20 rounded-full gradient-neon flex items-center justify-center mx-auto mb-6"),
			Icon("lucide:check-circle-2", "size-10 text-primary-foreground", ""),
		),
		H3(Class("font-display text-2xl font-bold mb-3 text-foreground"), g.Text("You're In!")),
		P(Class("text-muted-foreground"), g.Text("Welcome to Silicon Prairie. Check your inbox for next steps.")),
	)
}

// joinForm posts to /join. novalidate keeps the browser from swallowing
// empty submissions so the server-side notice is what the user sees.
func joinForm(roles []content.Role, state JoinState) g.Node {
	return Form(
		ID("join-form"),
		Method("post"),
		Action("/join"),
		Class("space-y-6"),
		g.Attr("novalidate"),
		g.Attr("data-join-state", "idle"),

		Div(
			Class("text-center mb-8"),
			H3(Class("font-display text-2xl font-bold text-foreground mb-2"), g.Text("Join the Network")),
			P(Class("text-muted-foreground text-sm"), g.Text("Start your journey with Silicon Prairie today")),
		),

		Div(
			Class("space-y-2"),
			Label(g.Attr("for", "email"), Class("text-sm font-medium text-foreground"), g.Text("Email")),
			Input(
				ID("email"),
				Name("email"),
				Type("email"),
				g.Attr("autocomplete", "email"),
				Placeholder("you@company.com"),
				Value(state.Email),
				Class("flex w-full rounded-md border bg-muted/50 border-border/50 px-3 text-sm text-foreground focus:border-primary focus:outline-none h-12"),
			),
		),

		g.El("fieldset",
			Class("space-y-3"),
			g.El("legend", Class("text-sm font-medium text-foreground mb-2"), g.Text("I am a...")),
			Div(
				Class("grid grid-cols-3 gap-3"),
				g.Group(g.Map(roles, func(r content.Role) g.Node {
					return roleOption(r, state.Role == r.Value)
				})),
			),
		),

		Button(
			Type("submit"),
			Class("group w-full inline-flex items-center justify-center rounded-md gradient-neon text-primary-foreground font-semibold h-12 text-base hover:opacity-90 transition-opacity disabled:opacity-60"),
			g.Attr("data-join-submit"),
			Span(
				Class("join-idle inline-flex items-center"),
				g.Text("Join Silicon Prairie"),
				Icon("lucide:arrow-right", "size-5 ml-2 group-hover:translate-x-1 transition-transform", ""),
			),
			Span(
				Class("join-busy hidden items-center"),
				Icon("lucide:loader-2", "size-5 mr-2 animate-spin", ""),
				g.Text("Joining..."),
			),
		),

		P(Class("text-xs text-muted-foreground text-center"), g.Text("By joining, you agree to our Terms of Service and Privacy Policy.")),
	)
}

// roleOption is a radio card. The input stays in the accessibility tree;
// peer-checked styles the card.
func roleOption(r content.Role, checked bool) g.Node {
	id := "role-" + r.Value
	return Label(
		g.Attr("for", id),
		Class("relative cursor-pointer"),
		Input(
			ID(id),
			Name("role"),
			Type("radio"),
			Value(r.Value),
			Class("peer sr-only"),
			g.If(checked, Checked()),
		),
		Div(
			Class("flex flex-col items-center gap-2 rounded-xl border border-border/50 bg-muted/30 p-4 text-center transition-all peer-checked:border-primary peer-checked:bg-primary/10 peer-checked:shadow-glow-cyan peer-focus-visible:ring-2 peer-focus-visible:ring-primary hover:border-primary/50"),
			Icon(r.Icon, "size-6 text-primary", ""),
			Span(Class("text-sm font-medium text-foreground"), g.Text(r.Label)),
			Span(Class("text-xs text-muted-foreground"), g.Text(r.Description)),
		),
	)
}
