package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platcon/platcon-api/internal/http/middleware"
	"github.com/platcon/platcon-api/internal/resmsg"
)

// Idempotency response header set when a create is served from a stored
// result.
const headerIdempotencyReplayed = "Idempotency-Replayed"

// respondErr writes a service error. Services return *resmsg.HTTPError; any
// other error is a programming mistake and becomes a logged 500.
func respondErr(c *gin.Context, err error) {
	var he *resmsg.HTTPError
	if errors.As(err, &he) {
		fail(c, he)
		return
	}
	lg := middleware.LoggerFrom(c)
	lg.Error().Err(err).Msg("unmapped service error")
	fail(c, resmsg.Internal())
}

// badRequest aborts with a 400 carrying msgs.
func badRequest(c *gin.Context, msgs ...string) {
	fail(c, &resmsg.HTTPError{Status: http.StatusBadRequest, Messages: msgs})
}
