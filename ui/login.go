package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
)

func LoginPage(path string) g.Node {
	return Page(
		"Admin Login",
		path,
		[]g.Node{
			pageHeader("Admin Login"),
			contentContainer(
				formContainer("loginForm",
					formGroup("Username", "name",
						TextInput("name", "name", ""),
					),
					formGroup("Password", "password",
						passwordInput("password", "password"),
					),
					actionButtons(
						button("Login",
							withType("submit"),
							withAttributes(
								hx.Post("/api/login"),
								hx.Target("#result"),
								hx.Indicator("#loginForm"),
							),
						),
					),
					resultContainer(),
				),
			),
		},
	)
}
