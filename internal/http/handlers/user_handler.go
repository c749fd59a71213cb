package handlers

import "github.com/gin-gonic/gin"

// CreateUser godoc
// @ID          createUser
// @Summary     Create a user
// @Description Creates an account. The password is stored as a bcrypt hash and never returned.
// @Description Supports idempotency via the Idempotency-Key header (same key → same user).
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    domain.CreateUserInput  true  "Create payload"
//
// @Success     201  {object}  domain.User
// @Header      201  {string}  Idempotency-Replayed  "true when served from a previous request"
// @Failure     400  {object}  resmsg.ErrorBody  "Validation failed"
// @Failure     409  {object}  resmsg.ErrorBody  "Email already in use"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /users [post]
func (h *Handlers) CreateUser(c *gin.Context) { createResource(h, c, h.users) }

// ListUsers godoc
// @ID          listUsers
// @Summary     List users
// @Description Returns every user in creation order, or one page when page or page_size is given.
// @Description Supports weak ETag via If-None-Match and may return 304.
// @Tags        Users
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"users:3:1735689600000000000\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {array}   domain.User
// @Header      200  {string}  ETag           "Weak ETag for current result"
// @Header      200  {integer} X-Total-Count  "Total rows (paginated requests only)"
// @Success     304  {string}  string "Not Modified"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) { listResources(c, h.users, "users") }

// GetUser godoc
// @ID          getUser
// @Summary     Get a user
// @Tags        Users
// @Produce     json
//
// @Param       id  path  string  true  "User ID (UUID)"  format(uuid) example(8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10)
//
// @Success     200  {object}  domain.User
// @Failure     400  {object}  resmsg.ErrorBody  "id must be a UUID"
// @Failure     404  {object}  resmsg.ErrorBody  "User not found"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /users/{id} [get]
func (h *Handlers) GetUser(c *gin.Context) { getResource(c, h.users) }

// UpdateUser godoc
// @ID          updateUser
// @Summary     Update a user
// @Description Applies the fields present in the payload; absent fields are left unchanged.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       id    path  string  true  "User ID (UUID)"  format(uuid) example(8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10)
// @Param       body  body  domain.UpdateUserInput  true  "Fields to change"
//
// @Success     200  {object}  resmsg.Message
// @Failure     400  {object}  resmsg.ErrorBody  "Validation failed"
// @Failure     404  {object}  resmsg.ErrorBody  "User not found"
// @Failure     409  {object}  resmsg.ErrorBody  "Email already in use"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /users/{id} [patch]
func (h *Handlers) UpdateUser(c *gin.Context) { updateResource(c, h.users) }

// DeleteUser godoc
// @ID          deleteUser
// @Summary     Delete a user
// @Tags        Users
// @Produce     json
//
// @Param       id  path  string  true  "User ID (UUID)"  format(uuid) example(8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10)
//
// @Success     200  {object}  resmsg.Message
// @Failure     400  {object}  resmsg.ErrorBody  "id must be a UUID"
// @Failure     404  {object}  resmsg.ErrorBody  "User not found"
// @Failure     409  {object}  resmsg.ErrorBody  "User still backs a member"
// @Failure     500  {object}  resmsg.ErrorBody  "Internal error"
// @Router      /users/{id} [delete]
func (h *Handlers) DeleteUser(c *gin.Context) { deleteResource(c, h.users) }
