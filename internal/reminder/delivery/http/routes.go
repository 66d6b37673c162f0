package http

import (
	"smart-reminders/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	reminders := rg.Group("/reminders")
	{
		reminders.POST("/parse", mw.RateLimit(), h.Parse)
		reminders.POST("/preview", mw.RateLimit(), h.Preview)
		reminders.POST("/bulk", mw.RateLimit(), h.ParseBulk)
		reminders.POST("/export", mw.RateLimit(), h.Export)
	}
}
