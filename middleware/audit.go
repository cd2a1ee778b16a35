package middleware

import (
	"fmt"
	"log"
	"net/http"

	"smart-supermarket/models"
	"smart-supermarket/repositories"

	"github.com/gin-gonic/gin"
)

// AuditMiddleware records every successful mutating request against the
// audit log. Reads are not logged. Failures to write the log never fail the
// request.
func AuditMiddleware(entityType string) gin.HandlerFunc {
	systemRepo := repositories.NewSystemRepository()

	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID := c.GetInt("user_id")
		ip := c.ClientIP()

		entry := &models.AuditLog{
			UserID:     userID,
			Action:     c.Request.Method,
			EntityType: entityType,
			Details:    fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			IPAddress:  &ip,
		}
		if err := systemRepo.CreateAuditLog(entry); err != nil {
			log.Println("Failed to write audit log:", err)
		}
	}
}
