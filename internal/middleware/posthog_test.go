package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTracker struct {
	mock.Mock
}

func (m *mockTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

// withUser stands in for AuthMiddleware.
func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(userIDKey), userID)
		c.Next()
	}
}

func newTrackedRouter(tracker EventTracker, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PosthogMiddleware(tracker))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/partners/:partnerID/statement/defaults", withUser("user-1"), func(c *gin.Context) {
		c.Status(status)
	})
	return r
}

func serve(r *gin.Engine, path string) {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
}

func TestPosthogMiddleware_ReportsSuccessfulRequest(t *testing.T) {
	tracker := new(mockTracker)
	tracker.On("Enqueue", "user-1", "api_request", mock.Anything).Once()

	serve(newTrackedRouter(tracker, http.StatusOK), "/api/v1/partners/7/statement/defaults")

	tracker.AssertExpectations(t)
	props := tracker.Calls[0].Arguments.Get(2).(map[string]any)
	assert.Equal(t, "/api/v1/partners/:partnerID/statement/defaults", props["route"])
	assert.Equal(t, "partners_statement_defaults", props["event_group"])
	assert.Equal(t, "7", props["partner_id"])
	assert.Equal(t, http.StatusOK, props["status_code"])
}

func TestPosthogMiddleware_SkipsFailuresAndHealth(t *testing.T) {
	tracker := new(mockTracker)

	serve(newTrackedRouter(tracker, http.StatusNotFound), "/api/v1/partners/7/statement/defaults")
	serve(newTrackedRouter(tracker, http.StatusOK), "/health")

	tracker.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything)
}

func TestPosthogMiddleware_NilTracker(t *testing.T) {
	require.NotPanics(t, func() {
		serve(newTrackedRouter(nil, http.StatusOK), "/api/v1/partners/7/statement/defaults")
	})
}

func TestTrackEvent_RequiresUser(t *testing.T) {
	tracker := new(mockTracker)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodPost, "/", nil)

	TrackEvent(c, tracker, "statement_sent", nil)
	tracker.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything)

	tracker.On("Enqueue", "user-1", "statement_sent", map[string]any{}).Once()
	c.Set(string(userIDKey), "user-1")
	TrackEvent(c, tracker, "statement_sent", nil)
	tracker.AssertExpectations(t)
}

func TestEventGroupForRoute(t *testing.T) {
	assert.Equal(t, "partners_attachments", eventGroupForRoute("/api/v1/partners/:partnerID/attachments/:attachmentID"))
	assert.Equal(t, "currencies", eventGroupForRoute("/api/v1/currencies"))
}
