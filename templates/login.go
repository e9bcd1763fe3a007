package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LoginPage renders the standalone login form. It does not use Layout so an
// unauthenticated visitor never sees the navigation bar.
func LoginPage(errorMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		errHTML := ""
		if errorMsg != "" {
			errHTML = fmt.Sprintf(`<p class="form-error">%s</p>`, templ.EscapeString(errorMsg))
		}

		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Tripconf - Login</title>
<link rel="stylesheet" href="/static/styles.css">
</head>
<body>
<main class="login-container">
<h1>Tripconf</h1>
%s
<form method="post" action="/login">
<label for="username">Username</label>
<input type="text" id="username" name="username" autocomplete="username" required>
<label for="password">Password</label>
<input type="password" id="password" name="password" autocomplete="current-password" required>
<button type="submit">Log in</button>
</form>
</main>
</body>
</html>`, errHTML)
		return err
	})
}
