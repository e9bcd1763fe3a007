package handlers

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"

	"tripconf/services"
)

const draftCookieName = "preventive_draft"

// SessionStore keeps the in-progress wizard sessions in memory, keyed by a
// random ID carried in a cookie. Drafts are disposable: losing them on
// restart only costs the user a partially filled form.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*services.Session
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*services.Session)}
}

// New creates a fresh session and returns its ID.
func (st *SessionStore) New(session *services.Session) string {
	st.mu.Lock()
	defer st.mu.Unlock()

	id := uuid.NewString()
	st.sessions[id] = session
	return id
}

// Get looks up a session by ID.
func (st *SessionStore) Get(id string) (*services.Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	return session, ok
}

// Delete removes a session, typically after submission.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, id)
}

// setDraftCookie points the browser at a wizard session.
func setDraftCookie(e *core.RequestEvent, id string) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     draftCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearDraftCookie(e *core.RequestEvent) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     draftCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// draftSession resolves the wizard session for the current request.
func draftSession(st *SessionStore, e *core.RequestEvent) (string, *services.Session, bool) {
	cookie, err := e.Request.Cookie(draftCookieName)
	if err != nil || cookie.Value == "" {
		return "", nil, false
	}
	session, ok := st.Get(cookie.Value)
	return cookie.Value, session, ok
}
