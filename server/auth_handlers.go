package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apiError "github.com/techagentng/bookxchange/errors"
	"github.com/techagentng/bookxchange/models"
	"github.com/techagentng/bookxchange/server/response"
)

func (s *Server) handleRegisterPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) != nil {
			c.Redirect(http.StatusFound, "/")
			return
		}
		s.render(c, http.StatusOK, "register.html", gin.H{"Title": "Register"})
	}
}

func (s *Server) handleRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		page := gin.H{"Title": "Register"}
		if err := c.ShouldBind(&req); err != nil {
			s.renderFormError(c, "register.html", page, apiError.ErrBadRequest)
			return
		}

		user, err := s.AuthService.Register(&req)
		if err != nil {
			page["Form"] = req
			s.renderFormError(c, "register.html", page, err)
			return
		}
		s.Metrics.Registrations.Inc()

		token, err := s.AuthService.IssueToken(user)
		if err != nil {
			s.renderError(c, err)
			return
		}
		s.logIn(c, token, "Registration successful! Welcome to the book exchange.")

		if wantsJSON(c) {
			response.JSON(c, "Registration successful! Welcome to the book exchange.", http.StatusCreated, user.ToResponse(), nil)
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

func (s *Server) handleLoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) != nil {
			c.Redirect(http.StatusFound, "/")
			return
		}
		s.render(c, http.StatusOK, "login.html", gin.H{"Title": "Log in", "Next": c.Query("next")})
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		next := c.PostForm("next")
		if next == "" {
			next = c.Query("next")
		}
		page := gin.H{"Title": "Log in", "Next": next}

		var req models.LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			s.renderFormError(c, "login.html", page, apiError.ErrBadRequest)
			return
		}

		loginResponse, err := s.AuthService.Login(&req)
		if err != nil {
			page["Form"] = req
			s.renderFormError(c, "login.html", page, err)
			return
		}
		s.logIn(c, loginResponse.AccessToken, "Logged in successfully.")

		if wantsJSON(c) {
			response.JSON(c, "Logged in successfully.", http.StatusOK, loginResponse.UserResponse, nil)
			return
		}
		c.Redirect(http.StatusFound, safeNext(next))
	}
}

func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.AuthService.Logout(accessToken(c)); err != nil {
			s.renderError(c, err)
			return
		}

		sess := s.session(c)
		delete(sess.Values, tokenKey)
		sess.AddFlash(Flash{Category: FlashInfo, Message: "You have been logged out."})
		s.saveSession(c, sess)

		if wantsJSON(c) {
			response.JSON(c, "You have been logged out.", http.StatusOK, nil, nil)
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}
