package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

// respond logs failures that are not business rejections before writing
// the error body.
func respond(c *gin.Context, log *zap.Logger, err error) {
	if _, ok := httperr.AsBusiness(err); !ok {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	httperr.Respond(c, err)
}
