package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.IncInternshipApply(4)
	m.IncInternshipApply(4)
	m.IncInternshipApply(5)
	m.ObserveApplication(OutcomeFull)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.internshipApplyClicks.WithLabelValues("4")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.internshipApplyClicks.WithLabelValues("5")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mentorshipApplications.WithLabelValues(OutcomeFull)))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `nexushub_http_request_duration_seconds_count{method="GET",route="/items/:id",status="204"} 1`)
}
