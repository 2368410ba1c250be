package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockticker/internal/domain/dto"
	"github.com/guttosm/stockticker/internal/logger"
)

// ErrorHandler logs errors attached with c.Error and turns them into a 500
// ErrorResponse when the handler did not write a response itself.
// Errors behind a client error response are logged at warn level.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	last := c.Errors.Last()
	rid, _ := c.Get(RequestIDKey)
	ev := logger.L().Error()
	if c.Writer.Written() && c.Writer.Status() < http.StatusInternalServerError {
		ev = logger.L().Warn()
	}
	ev.
		Str("request_id", toString(rid)).
		Str("path", c.Request.URL.Path).
		Err(last.Err).
		Msg("request error")

	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
	}
}

// AbortWithError stops the chain and writes a standardized ErrorResponse.
// A non-nil err is also attached to the context for ErrorHandler to log.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
