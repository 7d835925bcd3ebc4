package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRouter() *gin.Engine {
	if s.Metrics == nil {
		s.Metrics = NewMetrics()
	}
	if s.SessionStore == nil {
		s.SessionStore = NewSessionStore(s.Config)
	}

	r := gin.New()
	tmpl, err := parseTemplates()
	if err != nil {
		s.Log.WithError(err).Fatal("parsing templates")
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(s.requestLogger())
	r.Use(gin.Recovery())

	if len(s.Config.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     s.Config.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Accept", "Content-Type", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.MaxMultipartMemory = 1 << 20

	r.Use(s.LoadUser())
	s.defineRoutes(r)
	r.NoRoute(s.handleNotFound())

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	router.GET("/", s.handleHome())
	router.GET("/register", s.handleRegisterPage())
	router.POST("/register", s.handleRegister())
	router.GET("/login", s.handleLoginPage())
	router.POST("/login", s.handleLogin())
	router.GET("/listings", s.handleListings())
	router.GET("/listing/:id", s.handleListingDetail())
	router.GET("/healthz", s.handleHealth())
	router.GET("/metrics", s.Metrics.Handler())

	authorized := router.Group("/")
	authorized.Use(s.Authorize())
	authorized.GET("/logout", s.handleLogout())
	authorized.POST("/listing/:id", s.handleSendMessage())
	authorized.GET("/create_listing", s.handleCreateListingPage())
	authorized.POST("/create_listing", s.handleCreateListing())
	authorized.GET("/my_listings", s.handleMyListings())
	authorized.GET("/messages", s.handleMessages())
}
