package middleware

import (
	"github.com/gin-gonic/gin"

	ierr "github.com/guardbill/guardbill/internal/errors"
)

// ErrorMiddleware renders the first error a handler attached via c.Error as
// the standard API error envelope.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors[0].Err
		c.JSON(ierr.HTTPStatusFromErr(err), ierr.NewErrorResponse(err))
	}
}
