// Resource handlers.
//
// This file wires the service contracts consumed by the HTTP layer and the
// generic request flows shared by every resource:
//   - POST   /{resource}        (create, idempotent with Idempotency-Key)
//   - GET    /{resource}        (list, optional pagination, ETag support)
//   - GET    /{resource}/{id}   (read)
//   - PATCH  /{resource}/{id}   (partial update)
//   - DELETE /{resource}/{id}   (delete)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/platcon/platcon-api/internal/domain"
	"github.com/platcon/platcon-api/internal/http/middleware"
	"github.com/platcon/platcon-api/internal/resmsg"
	"github.com/platcon/platcon-api/internal/utils"
)

//
// Service contracts (context-aware)
//

// Keyed is implemented by resources that expose their primary key.
type Keyed interface {
	PrimaryKey() string
}

// Service defines the CRUD operations consumed by HTTP handlers for a
// resource T created from C and updated from U.
//
// Errors returned by implementations are *resmsg.HTTPError values.
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type Service[T Keyed, C any, U any] interface {
	Create(ctx context.Context, in C) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	FindPage(ctx context.Context, page, pageSize int) ([]T, int64, error)
	FindOne(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, in U) (resmsg.Message, error)
	Remove(ctx context.Context, id string) (resmsg.Message, error)
	Stats(ctx context.Context) (count int64, latest *time.Time, err error)
}

type (
	UserService    = Service[domain.User, domain.CreateUserInput, domain.UpdateUserInput]
	MemberService  = Service[domain.Member, domain.CreateMemberInput, domain.UpdateMemberInput]
	ChannelService = Service[domain.Channel, domain.CreateChannelInput, domain.UpdateChannelInput]
	ContentService = Service[domain.Content, domain.CreateContentInput, domain.UpdateContentInput]
)

// IdempotencyStore persists create outcomes keyed by (resource, key).
// Lookup reports the entity created by an earlier request with the same key.
type IdempotencyStore interface {
	Lookup(ctx context.Context, resource, key string, now time.Time) (entityID string, found bool, err error)
	Save(ctx context.Context, resource, key, entityID string, status int) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for users, members, channels and contents.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	users    UserService
	members  MemberService
	channels ChannelService
	contents ContentService

	// idem is optional; without it Idempotency-Key headers are ignored.
	idem IdempotencyStore
}

// New constructs and returns a Handlers instance bound to the given services.
func New(users UserService, members MemberService, channels ChannelService, contents ContentService, idem IdempotencyStore) *Handlers {
	useJSONFieldNames()
	return &Handlers{
		users:    users,
		members:  members,
		channels: channels,
		contents: contents,
		idem:     idem,
	}
}

//
// Generic flows
//

// createResource binds C, replays a stored result for a known
// Idempotency-Key, otherwise creates and records the outcome.
func createResource[T Keyed, C any, U any](h *Handlers, c *gin.Context, svc Service[T, C, U]) {
	ctx := c.Request.Context()
	resource := c.FullPath()
	idemKey, hasKey := middleware.GetIdempotencyKey(c)

	// Idempotency (replay path).
	if hasKey && h.idem != nil {
		if entityID, found, err := h.idem.Lookup(ctx, resource, idemKey, time.Now().UTC()); err == nil && found {
			if prev, err := svc.FindOne(ctx, entityID); err == nil {
				c.Header(headerIdempotencyReplayed, "true")
				ok(c, http.StatusCreated, prev)
				return
			}
		}
	}

	var in C
	if msgs := bindJSON(c, &in); msgs != nil {
		badRequest(c, msgs...)
		return
	}

	out, err := svc.Create(ctx, in)
	if err != nil {
		respondErr(c, err)
		return
	}

	// Idempotency (store path) – best effort.
	if hasKey && h.idem != nil {
		if err := h.idem.Save(ctx, resource, idemKey, (*out).PrimaryKey(), http.StatusCreated); err != nil {
			lg := middleware.LoggerFrom(c)
			lg.Warn().Err(err).Str("resource", resource).Msg("idempotency record not stored")
		}
	}

	ok(c, http.StatusCreated, out)
}

// listResources returns the whole collection, or one page of it when page or
// page_size is present (total in X-Total-Count). A weak ETag derived from the
// collection stats allows 304 responses.
func listResources[T Keyed, C any, U any](c *gin.Context, svc Service[T, C, U], name string) {
	ctx := c.Request.Context()
	page, pageSize, paged := utils.ParsePage(c.Query("page"), c.Query("page_size"))

	// ETag pre-check (best effort).
	if count, latest, err := svc.Stats(ctx); err == nil {
		var ts int64
		if latest != nil {
			ts = latest.UnixNano()
		}
		scope := name
		if paged {
			scope = fmt.Sprintf("%s:p%d:s%d", name, page, pageSize)
		}
		etag := fmt.Sprintf(`W/"%s:%d:%d"`, scope, count, ts)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	if !paged {
		items, err := svc.FindAll(ctx)
		if err != nil {
			respondErr(c, err)
			return
		}
		ok(c, http.StatusOK, items)
		return
	}

	items, total, err := svc.FindPage(ctx, page, pageSize)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	ok(c, http.StatusOK, items)
}

// getResource returns the resource named by the :id path parameter.
func getResource[T Keyed, C any, U any](c *gin.Context, svc Service[T, C, U]) {
	id := c.Param("id")
	if !isUUID(id) {
		badRequest(c, invalidIDMessage())
		return
	}
	out, err := svc.FindOne(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// updateResource applies a partial update to :id.
func updateResource[T Keyed, C any, U any](c *gin.Context, svc Service[T, C, U]) {
	id := c.Param("id")
	if !isUUID(id) {
		badRequest(c, invalidIDMessage())
		return
	}
	var in U
	if msgs := bindJSON(c, &in); msgs != nil {
		badRequest(c, msgs...)
		return
	}
	msg, err := svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, http.StatusOK, msg)
}

// deleteResource removes :id.
func deleteResource[T Keyed, C any, U any](c *gin.Context, svc Service[T, C, U]) {
	id := c.Param("id")
	if !isUUID(id) {
		badRequest(c, invalidIDMessage())
		return
	}
	msg, err := svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, http.StatusOK, msg)
}
