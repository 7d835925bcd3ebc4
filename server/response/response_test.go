package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	apiError "github.com/techagentng/bookxchange/errors"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSON(c, "ok", http.StatusOK, gin.H{"id": 1}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Equal(t, "ok", resp.Message)
	require.Equal(t, "OK", resp.Status)
	require.Empty(t, resp.Errors)
	require.NotEmpty(t, resp.Timestamp)
}

func TestHandleErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleErrors(c, apiError.ErrSelfMessage)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, apiError.ErrSelfMessage.Message, decode(t, w).Errors)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	HandleErrors(c, errors.New("pq: relation does not exist"))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, apiError.ErrInternalServerError.Message, decode(t, w).Errors)
}
