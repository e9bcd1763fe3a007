// Package templates holds the templ components for the web UI.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps page content with the common HTML shell: htmx, the toast
// listener and the top navigation bar.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="/static/htmx.min.js"></script>
<link rel="stylesheet" href="/static/styles.css">
</head>
<body>
`, templ.EscapeString(title)); err != nil {
			return err
		}

		if err := navBar().Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}

		if err := toastContainer().Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "</body>\n</html>")
		return err
	})
}

func navBar() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<nav class="navbar">
<a href="/preventives/new" class="navbar-brand">Tripconf</a>
<div class="navbar-links">
<a href="/preventives/new">New quote</a>
<a href="/preventives">Saved quotes</a>
<a href="/meals">Meals</a>
<a href="/services">Services</a>
<a href="/logout">Log out</a>
</div>
</nav>`)
		return err
	})
}

// toastContainer renders the toast area plus the listener for the
// showToast HX-Trigger event and the flash_toast cookie.
func toastContainer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="toast-container"></div>
<script>
function showToast(message, type) {
  var el = document.createElement("div");
  el.className = "toast toast-" + type;
  el.textContent = message;
  document.getElementById("toast-container").appendChild(el);
  setTimeout(function () { el.remove(); }, 4000);
}
document.body.addEventListener("showToast", function (evt) {
  showToast(evt.detail.message, evt.detail.type);
});
(function () {
  var match = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!match) return;
  try {
    var data = JSON.parse(decodeURIComponent(match[1]));
    showToast(data.message, data.type);
  } catch (e) {}
  document.cookie = "flash_toast=; Path=/; Max-Age=0";
})();
</script>`)
		return err
	})
}

// fieldError renders the inline error for a form field, if any.
func fieldError(errors map[string]string, field string) string {
	msg, ok := errors[field]
	if !ok {
		return ""
	}
	return fmt.Sprintf(`<span class="field-error">%s</span>`, templ.EscapeString(msg))
}
