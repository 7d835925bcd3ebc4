package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apiError "github.com/techagentng/bookxchange/errors"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Errors    string      `json:"errors,omitempty"`
	Status    string      `json:"status,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
}

func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	errMessage := ""
	if err != nil {
		errMessage = apiError.MessageOf(err)
	}
	c.JSON(status, Response{
		Message:   message,
		Data:      data,
		Errors:    errMessage,
		Status:    http.StatusText(status),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleErrors writes err with the status it carries.
func HandleErrors(c *gin.Context, err error) {
	JSON(c, "", apiError.StatusOf(err), nil, err)
}
