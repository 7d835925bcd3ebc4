package server

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	apiError "github.com/techagentng/bookxchange/errors"
	"github.com/techagentng/bookxchange/models"
	"github.com/techagentng/bookxchange/server/response"
)

const slowRequest = 2 * time.Second

// requestLogger logs one line per request and feeds the request metrics.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		duration := time.Since(start)
		s.Metrics.observe(c.Request.Method, c.FullPath(), c.Writer.Status(), duration.Seconds())

		entry := s.Log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   duration.String(),
			"remote_ip":  c.ClientIP(),
		})
		switch {
		case len(c.Errors) > 0:
			entry.WithField("errors", c.Errors.String()).Error("request failed")
		case duration > slowRequest:
			entry.Warn("slow request detected")
		default:
			entry.Info("request completed")
		}
	}
}

// LoadUser attaches the session user, if any. Anonymous requests pass through.
func (s *Server) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(s.session(c))
		if token == "" {
			c.Next()
			return
		}
		user, err := s.AuthService.Authenticate(token)
		if err != nil {
			if apiError.StatusOf(err) == http.StatusInternalServerError {
				s.Log.WithError(err).Error("resolving session user")
			}
			c.Next()
			return
		}
		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Set("access_token", token)
		c.Next()
	}
}

// Authorize gates protected routes. Browsers are sent to the login page with
// a way back; JSON clients get a 401.
func (s *Server) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) != nil {
			c.Next()
			return
		}
		if wantsJSON(c) {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, apiError.ErrLoginRequired)
			return
		}
		s.flash(c, FlashInfo, apiError.ErrLoginRequired.Message)
		c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

func respondAndAbort(c *gin.Context, message string, status int, data interface{}, e *apiError.Error) {
	response.JSON(c, message, status, data, e)
	c.Abort()
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func accessToken(c *gin.Context) string {
	return c.GetString("access_token")
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

// safeNext accepts only same-site paths.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
