package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// EventTracker receives product analytics events. utils.PosthogClientWrapper
// implements it and drops events when analytics is disabled.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// untrackedPaths are never reported.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// PosthogMiddleware reports every successful authenticated API call as an
// "api_request" event carrying the route template, the partner it concerns
// and the latency.
func PosthogMiddleware(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		props := map[string]any{
			"route":       route,
			"event_group": eventGroupForRoute(route),
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if partnerID := c.Param("partnerID"); partnerID != "" {
			props["partner_id"] = partnerID
		}
		tracker.Enqueue(userID, "api_request", props)
	}
}

// eventGroupForRoute names the feature a route belongs to,
// e.g. "/api/v1/partners/:partnerID/statement/send" -> "partners_statement_send".
func eventGroupForRoute(route string) string {
	var parts []string
	for _, seg := range strings.Split(strings.TrimPrefix(route, "/api/v1/"), "/") {
		if seg == "" || strings.HasPrefix(seg, ":") {
			continue
		}
		parts = append(parts, strings.ReplaceAll(seg, ".", "_"))
	}
	return strings.Join(parts, "_")
}

// TrackEvent sends a business event on behalf of the authenticated user.
func TrackEvent(c *gin.Context, tracker EventTracker, event string, properties map[string]any) {
	if tracker == nil {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	tracker.Enqueue(userID, event, properties)
}
