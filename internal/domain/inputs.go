package domain

// Request payloads. Binding tags are evaluated by gin's validator; update
// payloads use pointers so an absent field is distinguishable from an empty
// one, and "omitnil" keeps absent fields out of validation.

// CreateUserInput is the payload for POST /users.
type CreateUserInput struct {
	Name      string   `json:"name"                 binding:"required"                       example:"Ana Lima"`
	Email     string   `json:"email"                binding:"required,email"                 example:"ana@example.com"`
	Password  string   `json:"password"             binding:"required"                       example:"s3cret"`
	Role      UserRole `json:"role,omitempty"       binding:"omitempty,oneof=producer user"  example:"user"`
	AvatarURI *string  `json:"avatar_uri,omitempty" binding:"omitnil,min=33,max=33"          example:"1AbCdEfGhIjKlMnOpQrStUvWxYz012345"`
}

// UpdateUserInput is the payload for PATCH /users/{id}.
type UpdateUserInput struct {
	Name      *string   `json:"name,omitempty"       binding:"omitnil,min=1"`
	Email     *string   `json:"email,omitempty"      binding:"omitnil,min=1,email"`
	Password  *string   `json:"password,omitempty"   binding:"omitnil,min=1"`
	Role      *UserRole `json:"role,omitempty"       binding:"omitnil,oneof=producer user"`
	AvatarURI *string   `json:"avatar_uri,omitempty" binding:"omitnil,min=33,max=33"`
}

// UserChanges is the printable form of UpdateUserInput.
type UserChanges struct {
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Password  *string   `json:"password,omitempty"`
	Role      *UserRole `json:"role,omitempty"`
	AvatarURI *string   `json:"avatar_uri,omitempty"`
}

const redacted = "[REDACTED]"

// Changes returns the requested changes with the password masked.
func (in UpdateUserInput) Changes() any {
	out := UserChanges{Name: in.Name, Email: in.Email, Role: in.Role, AvatarURI: in.AvatarURI}
	if in.Password != nil {
		p := redacted
		out.Password = &p
	}
	return out
}

// Columns maps the present fields to column updates. Password is copied
// verbatim; the repository hashes it.
func (in UpdateUserInput) Columns() map[string]any {
	cols := map[string]any{}
	putIf(cols, "name", in.Name)
	putIf(cols, "email", in.Email)
	putIf(cols, "password", in.Password)
	if in.Role != nil {
		cols["role"] = *in.Role
	}
	putIf(cols, "avatar_uri", in.AvatarURI)
	return cols
}

// CreateMemberInput is the payload for POST /members.
type CreateMemberInput struct {
	StageName   string   `json:"stage_name"           binding:"required"              example:"DJ Lua"`
	Description string   `json:"description"          binding:"required"              example:"Electronic music producer"`
	AvatarURI   *string  `json:"avatar_uri,omitempty" binding:"omitnil,min=33,max=33"`
	Website     []string `json:"website,omitempty"    binding:"omitempty,dive,url"    example:"https://dj-lua.example.com"`
	UserID      *string  `json:"user_id,omitempty"    binding:"omitnil,uuid"          example:"8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10"`
}

// UpdateMemberInput is the payload for PATCH /members/{id}.
type UpdateMemberInput struct {
	StageName   *string  `json:"stage_name,omitempty"  binding:"omitnil,min=1"`
	Description *string  `json:"description,omitempty" binding:"omitnil,min=1"`
	AvatarURI   *string  `json:"avatar_uri,omitempty"  binding:"omitnil,min=33,max=33"`
	Website     []string `json:"website,omitempty"     binding:"omitempty,dive,url"`
	UserID      *string  `json:"user_id,omitempty"     binding:"omitnil,uuid"`
}

// Changes returns the requested changes.
func (in UpdateMemberInput) Changes() any { return in }

// Columns maps the present fields to column updates.
func (in UpdateMemberInput) Columns() map[string]any {
	cols := map[string]any{}
	putIf(cols, "stage_name", in.StageName)
	putIf(cols, "description", in.Description)
	putIf(cols, "avatar_uri", in.AvatarURI)
	if in.Website != nil {
		cols["website"] = ListOf(in.Website)
	}
	putIf(cols, "user_id", in.UserID)
	return cols
}

// CreateChannelInput is the payload for POST /channels.
type CreateChannelInput struct {
	Name        string   `json:"name"                binding:"required"             example:"Lo-fi Beats"`
	Description string   `json:"description"         binding:"required"             example:"Beats to relax to"`
	Tags        []string `json:"tags"                binding:"required,min=1"       example:"music,lofi"`
	LogoURI     *string  `json:"logo_uri,omitempty"  binding:"omitnil,min=33,max=33"`
	CoverURI    *string  `json:"cover_uri,omitempty" binding:"omitnil,min=33,max=33"`
	Members     []string `json:"members,omitempty"   binding:"omitempty,dive,uuid"`
}

// UpdateChannelInput is the payload for PATCH /channels/{id}. A non-nil
// Members replaces the whole membership.
type UpdateChannelInput struct {
	Name        *string  `json:"name,omitempty"        binding:"omitnil,min=1"`
	Description *string  `json:"description,omitempty" binding:"omitnil,min=1"`
	Tags        []string `json:"tags,omitempty"        binding:"omitnil,min=1"`
	LogoURI     *string  `json:"logo_uri,omitempty"    binding:"omitnil,min=33,max=33"`
	CoverURI    *string  `json:"cover_uri,omitempty"   binding:"omitnil,min=33,max=33"`
	Members     []string `json:"members,omitempty"     binding:"omitnil,dive,uuid"`
}

// Changes returns the requested changes.
func (in UpdateChannelInput) Changes() any { return in }

// Columns maps the present scalar fields to column updates. Membership is
// handled separately.
func (in UpdateChannelInput) Columns() map[string]any {
	cols := map[string]any{}
	putIf(cols, "name", in.Name)
	putIf(cols, "description", in.Description)
	if in.Tags != nil {
		cols["tags"] = ListOf(in.Tags)
	}
	putIf(cols, "logo_img_uri", in.LogoURI)
	putIf(cols, "cover_img_uri", in.CoverURI)
	return cols
}

// ContentBodyInput is one body block of a content payload.
type ContentBodyInput struct {
	Type  ContentType `json:"type"  binding:"required,oneof=text video audio" example:"text"`
	Value string      `json:"value" binding:"required"                        example:"Once upon a time"`
}

// CreateContentInput is the payload for POST /contents.
type CreateContentInput struct {
	Title       string             `json:"title"               binding:"required"             example:"Episode 1"`
	Description string             `json:"description"         binding:"required"             example:"Pilot"`
	ThumbURI    *string            `json:"thumb_uri,omitempty" binding:"omitnil,min=33,max=33"`
	ChannelID   string             `json:"channel_id"          binding:"required,uuid"        example:"8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10"`
	Body        []ContentBodyInput `json:"body,omitempty"      binding:"omitempty,dive"`
}

// UpdateContentInput is the payload for PATCH /contents/{id}. A non-nil Body
// replaces all body blocks.
type UpdateContentInput struct {
	Title       *string            `json:"title,omitempty"       binding:"omitnil,min=1"`
	Description *string            `json:"description,omitempty" binding:"omitnil,min=1"`
	ThumbURI    *string            `json:"thumb_uri,omitempty"   binding:"omitnil,min=33,max=33"`
	ChannelID   *string            `json:"channel_id,omitempty"  binding:"omitnil,uuid"`
	Body        []ContentBodyInput `json:"body,omitempty"        binding:"omitempty,dive"`
}

// Changes returns the requested changes.
func (in UpdateContentInput) Changes() any { return in }

// Columns maps the present header fields to column updates. The body is
// handled separately.
func (in UpdateContentInput) Columns() map[string]any {
	cols := map[string]any{}
	putIf(cols, "title", in.Title)
	putIf(cols, "description", in.Description)
	putIf(cols, "thumb_uri", in.ThumbURI)
	putIf(cols, "channel_id", in.ChannelID)
	return cols
}

func putIf(cols map[string]any, col string, v *string) {
	if v != nil {
		cols[col] = *v
	}
}
