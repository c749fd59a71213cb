package handlers

import "github.com/gin-gonic/gin"

// CreateMember godoc
// @ID          createMember
// @Summary     Create a member
// @Description Creates an artist profile, optionally linked to an existing user.
// @Description Supports idempotency via the Idempotency-Key header (same key → same member).
// @Tags        Members
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    domain.CreateMemberInput  true  "Create payload"
//
// @Success     201  {object}  domain.Member
// @Header      201  {string}  Idempotency-Replayed  "true when served from a previous request"
// @Failure     400  {object}  resmsg.ErrorBody  "Validation failed"
// @Failure     404  {object}  resmsg.ErrorBody  "Referenced user does not exist"
// @Failure     409  {object}  resmsg.ErrorBody  "Stage name already in use"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /members [post]
func (h *Handlers) CreateMember(c *gin.Context) { createResource(h, c, h.members) }

// ListMembers godoc
// @ID          listMembers
// @Summary     List members
// @Description Returns every member in creation order, or one page when page or page_size is given.
// @Description Supports weak ETag via If-None-Match and may return 304.
// @Tags        Members
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"members:3:1735689600000000000\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {array}   domain.Member
// @Header      200  {string}  ETag           "Weak ETag for current result"
// @Header      200  {integer} X-Total-Count  "Total rows (paginated requests only)"
// @Success     304  {string}  string "Not Modified"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /members [get]
func (h *Handlers) ListMembers(c *gin.Context) { listResources(c, h.members, "members") }

// GetMember godoc
// @ID          getMember
// @Summary     Get a member
// @Tags        Members
// @Produce     json
//
// @Param       id  path  string  true  "Member ID (UUID)"  format(uuid) example(8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10)
//
// @Success     200  {object}  domain.Member
// @Failure     400  {object}  resmsg.ErrorBody  "id must be a UUID"
// @Failure     404  {object}  resmsg.ErrorBody  "Member not found"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /members/{id} [get]
func (h *Handlers) GetMember(c *gin.Context) { getResource(c, h.members) }

// UpdateMember godoc
// @ID          updateMember
// @Summary     Update a member
// @Description Applies the fields present in the payload; absent fields are left unchanged.
// @Tags        Members
// @Accept      json
// @Produce     json
//
// @Param       id    path  string  true  "Member ID (UUID)"  format(uuid) example(8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10)
// @Param       body  body  domain.UpdateMemberInput  true  "Fields to change"
//
// @Success     200  {object}  resmsg.Message
// @Failure     400  {object}  resmsg.ErrorBody  "Validation failed"
// @Failure     404  {object}  resmsg.ErrorBody  "Member not found"
// @Failure     409  {object}  resmsg.ErrorBody  "Stage name already in use"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /members/{id} [patch]
func (h *Handlers) UpdateMember(c *gin.Context) { updateResource(c, h.members) }

// DeleteMember godoc
// @ID          deleteMember
// @Summary     Delete a member
// @Tags        Members
// @Produce     json
//
// @Param       id  path  string  true  "Member ID (UUID)"  format(uuid) example(8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10)
//
// @Success     200  {object}  resmsg.Message
// @Failure     400  {object}  resmsg.ErrorBody  "id must be a UUID"
// @Failure     404  {object}  resmsg.ErrorBody  "Member not found"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /members/{id} [delete]
func (h *Handlers) DeleteMember(c *gin.Context) { deleteResource(c, h.members) }
