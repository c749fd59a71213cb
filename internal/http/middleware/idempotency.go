// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file validates the Idempotency-Key header on create requests. A valid
// key is stashed in the gin context for handlers (GetIdempotencyKey). When a
// lookup is configured and a live record already exists for the route and
// key, the request is flagged as a replay (IsReplay) and exempted from rate
// limiting.
package middleware

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/platcon/platcon-api/internal/resmsg"
)

// HeaderIdempotencyKey is the request header carrying a client-chosen key
// that makes a create safe to retry.
const HeaderIdempotencyKey = "Idempotency-Key"

const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay"
	ctxKeyRateBypass = "rate.bypass"
)

var defaultKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)

// GetIdempotencyKey returns the validated key stored by IdempotencyValidator.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	s := c.GetString(ctxKeyIdemKey)
	return s, s != ""
}

// IsReplay reports whether a stored outcome exists for this request's key.
func IsReplay(c *gin.Context) bool {
	return c.GetBool(ctxKeyIdemReplay)
}

// IdempotencyOptions configures key validation.
type IdempotencyOptions struct {
	// MaxLen caps the key length. Values <= 0 default to 200.
	MaxLen int
	// Pattern restricts allowed characters. Defaults to ^[A-Za-z0-9._~\-:]+$.
	Pattern *regexp.Regexp
}

// IdempotencyLookup reports whether an unexpired record exists for key on
// resource (the matched route, e.g. "/users"). Errors never block the request.
type IdempotencyLookup func(ctx context.Context, resource, key string, now time.Time) (exists bool, err error)

// IdempotencyValidator checks the Idempotency-Key header. Requests without
// the header pass through untouched; malformed keys get a 400.
func IdempotencyValidator(opts IdempotencyOptions, lookup IdempotencyLookup) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 200
	}
	pat := opts.Pattern
	if pat == nil {
		pat = defaultKeyPattern
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxLen {
			he := resmsg.BadRequest(HeaderIdempotencyKey + " must be shorter than or equal to " + strconv.Itoa(maxLen) + " characters")
			c.AbortWithStatusJSON(he.Status, he.Body())
			return
		}
		if !pat.MatchString(key) {
			he := resmsg.BadRequest(resmsg.New().MustBe(HeaderIdempotencyKey, "a token of letters, digits or ._~-:").String())
			c.AbortWithStatusJSON(he.Status, he.Body())
			return
		}

		c.Set(ctxKeyIdemKey, key)

		if lookup != nil {
			if exists, _ := lookup(c.Request.Context(), c.FullPath(), key, time.Now().UTC()); exists {
				c.Set(ctxKeyIdemReplay, true)
				c.Set(ctxKeyRateBypass, true)
			}
		}

		c.Next()
	}
}
