package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Form Components ----

func formContainer(formID string, content ...g.Node) g.Node {
	return Form(
		ID(formID),
		Class("space-y-6"),
		g.Group(content),
	)
}

func formGroup(labelText string, fieldID string, input g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(fieldID), Class("block"), g.Text(labelText)),
		input,
	)
}

func TextInput(id, name, value string) g.Node {
	return Input(
		Type("text"),
		ID(id),
		Name(name),
		Value(value),
		Class("w-full p-2 border rounded"),
	)
}

func emailInput(id, name, placeholder string) g.Node {
	return Input(
		Type("email"),
		ID(id),
		Name(name),
		g.Attr("placeholder", placeholder),
		Required(),
		Class("w-full p-2 border rounded"),
	)
}

func passwordInput(id, name string) g.Node {
	return Input(
		Type("password"),
		ID(id),
		Name(name),
		Class("w-full p-2 border rounded"),
	)
}

func textArea(id, name string, rows int) g.Node {
	return Textarea(
		ID(id),
		Name(name),
		Rows(strconv.Itoa(rows)),
		Class("w-full p-2 border rounded"),
	)
}
