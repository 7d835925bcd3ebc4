package server

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apiError "github.com/techagentng/bookxchange/errors"
	"github.com/techagentng/bookxchange/server/response"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04")
	},
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
}

// render fills in the data every page layout expects and writes the page.
func (s *Server) render(c *gin.Context, status int, page string, data gin.H, notices ...Flash) {
	if data == nil {
		data = gin.H{}
	}
	data["CurrentUser"] = currentUser(c)
	data["Flashes"] = append(s.popFlashes(c), notices...)
	data["CurrentYear"] = time.Now().UTC().Year()
	c.HTML(status, page, data)
}

// respond answers JSON clients with payload and everyone else with the page.
func (s *Server) respond(c *gin.Context, status int, page string, data gin.H, payload interface{}) {
	if wantsJSON(c) {
		response.JSON(c, "", status, payload, nil)
		return
	}
	s.render(c, status, page, data)
}

// renderError shows err on the not-found or generic error page.
func (s *Server) renderError(c *gin.Context, err error) {
	status := apiError.StatusOf(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	if wantsJSON(c) {
		response.HandleErrors(c, err)
		return
	}
	if status == http.StatusNotFound {
		s.render(c, status, "404.html", gin.H{"Title": "Page not found"})
		return
	}
	s.render(c, status, "error.html", gin.H{"Title": "Error", "Message": apiError.MessageOf(err)})
}

// renderFormError re-displays a form with the failure notice, or the error
// page when the failure is not the user's.
func (s *Server) renderFormError(c *gin.Context, page string, data gin.H, err error) {
	status := apiError.StatusOf(err)
	if status == http.StatusInternalServerError || status == http.StatusNotFound {
		s.renderError(c, err)
		return
	}
	if wantsJSON(c) {
		response.HandleErrors(c, err)
		return
	}
	category := FlashDanger
	if status == http.StatusForbidden {
		category = FlashWarning
	}
	s.render(c, status, page, data, Flash{Category: category, Message: apiError.MessageOf(err)})
}
