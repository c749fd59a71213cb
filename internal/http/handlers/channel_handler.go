package handlers

import "github.com/gin-gonic/gin"

// CreateChannel godoc
// @ID          createChannel
// @Summary     Create a channel
// @Description Creates a channel and its memberships. Every listed member must exist.
// @Description Supports idempotency via the Idempotency-Key header (same key → same channel).
// @Tags        Channels
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    domain.CreateChannelInput  true  "Create payload"
//
// @Success     201  {object}  domain.Channel
// @Header      201  {string}  Idempotency-Replayed  "true when served from a previous request"
// @Failure     400  {object}  resmsg.ErrorBody  "Validation failed"
// @Failure     404  {object}  resmsg.ErrorBody  "A listed member does not exist"
// @Failure     409  {object}  resmsg.ErrorBody  "Name already in use"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /channels [post]
func (h *Handlers) CreateChannel(c *gin.Context) { createResource(h, c, h.channels) }

// ListChannels godoc
// @ID          listChannels
// @Summary     List channels
// @Description Returns every channel in creation order, or one page when page or page_size is given.
// @Description Supports weak ETag via If-None-Match and may return 304.
// @Tags        Channels
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"channels:3:1735689600000000000\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {array}   domain.Channel
// @Header      200  {string}  ETag           "Weak ETag for current result"
// @Header      200  {integer} X-Total-Count  "Total rows (paginated requests only)"
// @Success     304  {string}  string "Not Modified"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /channels [get]
func (h *Handlers) ListChannels(c *gin.Context) { listResources(c, h.channels, "channels") }

// GetChannel godoc
// @ID          getChannel
// @Summary     Get a channel
// @Tags        Channels
// @Produce     json
//
// @Param       id  path  string  true  "Channel ID (UUID)"  format(uuid) example(8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10)
//
// @Success     200  {object}  domain.Channel
// @Failure     400  {object}  resmsg.ErrorBody  "id must be a UUID"
// @Failure     404  {object}  resmsg.ErrorBody  "Channel not found"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /channels/{id} [get]
func (h *Handlers) GetChannel(c *gin.Context) { getResource(c, h.channels) }

// UpdateChannel godoc
// @ID          updateChannel
// @Summary     Update a channel
// @Description Applies the fields present in the payload; absent fields are left unchanged.
// @Tags        Channels
// @Accept      json
// @Produce     json
//
// @Param       id    path  string  true  "Channel ID (UUID)"  format(uuid) example(8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10)
// @Param       body  body  domain.UpdateChannelInput  true  "Fields to change"
//
// @Success     200  {object}  resmsg.Message
// @Failure     400  {object}  resmsg.ErrorBody  "Validation failed"
// @Failure     404  {object}  resmsg.ErrorBody  "Channel not found"
// @Failure     409  {object}  resmsg.ErrorBody  "Name already in use"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /channels/{id} [patch]
func (h *Handlers) UpdateChannel(c *gin.Context) { updateResource(c, h.channels) }

// DeleteChannel godoc
// @ID          deleteChannel
// @Summary     Delete a channel
// @Tags        Channels
// @Produce     json
//
// @Param       id  path  string  true  "Channel ID (UUID)"  format(uuid) example(8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10)
//
// @Success     200  {object}  resmsg.Message
// @Failure     400  {object}  resmsg.ErrorBody  "id must be a UUID"
// @Failure     404  {object}  resmsg.ErrorBody  "Channel not found"
// @Failure     409  {object}  resmsg.ErrorBody  "Channel still has contents"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /channels/{id} [delete]
func (h *Handlers) DeleteChannel(c *gin.Context) { deleteResource(c, h.channels) }
