package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seasonpulse/internal/domain/dto"
	"seasonpulse/internal/logger"
)

// ErrorHandler is a Gin middleware that funnels errors attached to the
// context into a single standardized JSON response. Handlers that already
// wrote a response are left alone; an error that reached the end of the
// chain unanswered becomes a 500.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().
		Str("path", c.Request.URL.Path).
		Err(err).
		Msg("unhandled request error")

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the handler chain with a JSON error response and
// records the underlying error on the context so middleware can log it.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
