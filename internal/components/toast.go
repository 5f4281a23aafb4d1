package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type ToastVariant string

const (
	ToastDefault     ToastVariant = "default"
	ToastDestructive ToastVariant = "destructive"
)

// Notice is a transient message shown once after a form round trip
type Notice struct {
	Title       string
	Description string
	Variant     ToastVariant
}

// Toasts renders the notification viewport. It is always present so the
// page layout does not shift when a notice appears.
func Toasts(notices ...Notice) g.Node {
	return Div(
		ID("toasts"),
		Class("fixed bottom-0 right-0 z-[100] flex max-h-screen w-full flex-col gap-2 p-4 md:max-w-[420px]"),
		g.Attr("aria-live", "polite"),
		g.Group(g.Map(notices, Toast)),
	)
}

func Toast(n Notice) g.Node {
	classes := "toast glass-card pointer-events-auto w-full rounded-md border p-4 pr-8 shadow-lg animate-toast"
	role := "status"
	if n.Variant == ToastDestructive {
		classes += " toast-destructive border-destructive bg-destructive text-destructive-foreground"
		role = "alert"
	} else {
		classes += " border-border text-foreground"
	}

	return Div(
		Class(classes),
		g.Attr("role", role),
		g.Attr("data-variant", string(variantOrDefault(n.Variant))),
		Div(Class("text-sm font-semibold"), g.Text(n.Title)),
		g.If(n.Description != "", Div(Class("text-sm opacity-90"), g.Text(n.Description))),
	)
}

func variantOrDefault(v ToastVariant) ToastVariant {
	if v == "" {
		return ToastDefault
	}
	return v
}
