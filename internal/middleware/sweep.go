package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/groomly/salon-scheduler/internal/timezone"
	ucAppointment "github.com/groomly/salon-scheduler/internal/usecase/appointment"
)

// SweepMiddleware runs the auto-completion sweeper before each request.
// There is no background scheduler; staleness is bounded by request
// arrival, which is enough for minute-level accuracy. A failing sweep
// never fails the request it piggybacks on.
func SweepMiddleware(sweeper *ucAppointment.SweepCompleted, tz string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := sweeper.Execute(c.Request.Context(), timezone.NowIn(tz)); err != nil {
			log.Printf("sweep: %v", err)
		}

		c.Next()
	}
}
