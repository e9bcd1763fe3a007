package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"tripconf/templates"
)

// HandleLoginPage renders the login form.
func HandleLoginPage() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return templates.LoginPage("").Render(e.Request.Context(), e.Response)
	}
}

// HandleLogin checks the submitted credentials and sets the auth cookie.
func HandleLogin(cfg AuthConfig) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		username := e.Request.FormValue("username")
		password := e.Request.FormValue("password")

		if !cfg.CheckCredentials(username, password) {
			log.Printf("login: failed attempt for user %q", username)
			return templates.LoginPage("Invalid username or password").Render(e.Request.Context(), e.Response)
		}

		token, err := cfg.IssueToken(time.Now())
		if err != nil {
			log.Printf("login: failed to issue token: %v", err)
			return templates.LoginPage("Something went wrong. Please try again.").Render(e.Request.Context(), e.Response)
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     authCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(tokenLifetime.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return e.Redirect(http.StatusFound, "/preventives/new")
	}
}

// HandleLogout clears the auth cookie.
func HandleLogout() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clearAuthCookie(e)
		return e.Redirect(http.StatusFound, "/login")
	}
}
