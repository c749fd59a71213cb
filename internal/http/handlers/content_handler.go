package handlers

import "github.com/gin-gonic/gin"

// CreateContent godoc
// @ID          createContent
// @Summary     Create a content
// @Description Creates a content and its ordered body blocks in one transaction.
// @Description Supports idempotency via the Idempotency-Key header (same key → same content).
// @Tags        Contents
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    domain.CreateContentInput  true  "Create payload"
//
// @Success     201  {object}  domain.Content
// @Header      201  {string}  Idempotency-Replayed  "true when served from a previous request"
// @Failure     400  {object}  resmsg.ErrorBody  "Validation failed"
// @Failure     404  {object}  resmsg.ErrorBody  "Referenced channel does not exist"
// @Failure     409  {object}  resmsg.ErrorBody  "Title already in use"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /contents [post]
func (h *Handlers) CreateContent(c *gin.Context) { createResource(h, c, h.contents) }

// ListContents godoc
// @ID          listContents
// @Summary     List contents
// @Description Returns every content in creation order, or one page when page or page_size is given.
// @Description Supports weak ETag via If-None-Match and may return 304.
// @Tags        Contents
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"contents:3:1735689600000000000\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {array}   domain.Content
// @Header      200  {string}  ETag           "Weak ETag for current result"
// @Header      200  {integer} X-Total-Count  "Total rows (paginated requests only)"
// @Success     304  {string}  string "Not Modified"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /contents [get]
func (h *Handlers) ListContents(c *gin.Context) { listResources(c, h.contents, "contents") }

// GetContent godoc
// @ID          getContent
// @Summary     Get a content
// @Tags        Contents
// @Produce     json
//
// @Param       id  path  string  true  "Content ID (UUID)"  format(uuid) example(8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10)
//
// @Success     200  {object}  domain.Content
// @Failure     400  {object}  resmsg.ErrorBody  "id must be a UUID"
// @Failure     404  {object}  resmsg.ErrorBody  "Content not found"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /contents/{id} [get]
func (h *Handlers) GetContent(c *gin.Context) { getResource(c, h.contents) }

// UpdateContent godoc
// @ID          updateContent
// @Summary     Update a content
// @Description Applies the fields present in the payload; absent fields are left unchanged.
// @Tags        Contents
// @Accept      json
// @Produce     json
//
// @Param       id    path  string  true  "Content ID (UUID)"  format(uuid) example(8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10)
// @Param       body  body  domain.UpdateContentInput  true  "Fields to change"
//
// @Success     200  {object}  resmsg.Message
// @Failure     400  {object}  resmsg.ErrorBody  "Validation failed"
// @Failure     404  {object}  resmsg.ErrorBody  "Content not found"
// @Failure     409  {object}  resmsg.ErrorBody  "Title already in use"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /contents/{id} [patch]
func (h *Handlers) UpdateContent(c *gin.Context) { updateResource(c, h.contents) }

// DeleteContent godoc
// @ID          deleteContent
// @Summary     Delete a content
// @Tags        Contents
// @Produce     json
//
// @Param       id  path  string  true  "Content ID (UUID)"  format(uuid) example(8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10)
//
// @Success     200  {object}  resmsg.Message
// @Failure     400  {object}  resmsg.ErrorBody  "id must be a UUID"
// @Failure     404  {object}  resmsg.ErrorBody  "Content not found"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /contents/{id} [delete]
func (h *Handlers) DeleteContent(c *gin.Context) { deleteResource(c, h.contents) }
