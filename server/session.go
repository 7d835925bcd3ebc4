package server

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/techagentng/bookxchange/config"
)

const (
	sessionName = "bookxchange_session"
	tokenKey    = "token"
)

// Flash categories
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// NewSessionStore returns a signed cookie store keyed by the session secret.
func NewSessionStore(c *config.Config) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(c.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(c.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.IsProd(),
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// session never fails: an unreadable cookie yields a fresh session.
func (s *Server) session(c *gin.Context) *sessions.Session {
	sess, err := s.SessionStore.Get(c.Request, sessionName)
	if err != nil {
		s.Log.WithError(err).Debug("discarding unreadable session cookie")
	}
	return sess
}

func (s *Server) saveSession(c *gin.Context, sess *sessions.Session) {
	if err := sess.Save(c.Request, c.Writer); err != nil {
		s.Log.WithError(err).Error("saving session")
	}
}

func sessionToken(sess *sessions.Session) string {
	token, _ := sess.Values[tokenKey].(string)
	return token
}

// logIn stores the session token together with a success flash.
func (s *Server) logIn(c *gin.Context, token string, flash string) {
	sess := s.session(c)
	sess.Values[tokenKey] = token
	sess.AddFlash(Flash{Category: FlashSuccess, Message: flash})
	s.saveSession(c, sess)
}

func (s *Server) flash(c *gin.Context, category, message string) {
	sess := s.session(c)
	sess.AddFlash(Flash{Category: category, Message: message})
	s.saveSession(c, sess)
}

// popFlashes drains pending flashes; call before the body is written.
func (s *Server) popFlashes(c *gin.Context) []Flash {
	sess := s.session(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	s.saveSession(c, sess)
	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
