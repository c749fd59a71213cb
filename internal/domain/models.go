// Package domain defines the persistence models for users, members, channels
// and contents. These types are mapped with GORM and double as the JSON
// resources returned by the HTTP layer.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// UserRole is the closed set of account roles.
type UserRole string

const (
	RoleProducer UserRole = "producer"
	RoleUser     UserRole = "user"
)

// ContentType is the kind of a content body block.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentVideo ContentType = "video"
	ContentAudio ContentType = "audio"
)

// User is an account on the platform. Email is unique; the password is only
// ever stored as a bcrypt hash and never serialised.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - Name / Email: display name and unique login address.
//   - Password: bcrypt hash, hidden from JSON.
//   - Role: "producer" or "user" (default "user").
//   - AvatarURI: optional 33-char document URI.
type User struct {
	ID        string    `json:"id"                   gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"                 gorm:"type:text;not null"`
	Email     string    `json:"email"                gorm:"type:varchar(320);not null;uniqueIndex:ux_users_email"`
	Password  string    `json:"-"                    gorm:"type:text"`
	Role      UserRole  `json:"role"                 gorm:"type:varchar(16);not null;default:'user';check:role IN ('producer','user')"`
	AvatarURI *string   `json:"avatar_uri,omitempty" gorm:"type:varchar(33)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// PrimaryKey returns the resource id.
func (u User) PrimaryKey() string { return u.ID }

// Member is an artist profile, optionally linked to a User. Deleting a user
// that still backs a member is rejected by the RESTRICT constraint.
type Member struct {
	ID          string     `json:"id"                   gorm:"type:char(36);primaryKey"`
	StageName   string     `json:"stage_name"           gorm:"type:varchar(255);not null;uniqueIndex:ux_members_stage_name"`
	Description string     `json:"description"          gorm:"type:text;not null"`
	AvatarURI   *string    `json:"avatar_uri,omitempty" gorm:"type:varchar(33)"`
	Website     datatypes.JSONSlice[string] `json:"website"              gorm:"type:text"`
	UserID      *string    `json:"user_id,omitempty"    gorm:"type:char(36);index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User     *User     `json:"-"                  gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Channels []Channel `json:"channels,omitempty" gorm:"many2many:channel_members;joinForeignKey:MemberID;joinReferences:ChannelID"`
}

// TableName returns the database table name for Member.
func (Member) TableName() string { return "members" }

// PrimaryKey returns the resource id.
func (m Member) PrimaryKey() string { return m.ID }

// Channel groups members and publishes contents. Logo and cover URIs keep
// their historical column names.
type Channel struct {
	ID          string     `json:"id"                  gorm:"type:char(36);primaryKey"`
	Name        string     `json:"name"                gorm:"type:varchar(255);not null;uniqueIndex:ux_channels_name"`
	Description string     `json:"description"         gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `json:"tags"                gorm:"type:text;not null"`
	LogoURI     *string    `json:"logo_uri,omitempty"  gorm:"column:logo_img_uri;type:varchar(33)"`
	CoverURI    *string    `json:"cover_uri,omitempty" gorm:"column:cover_img_uri;type:varchar(33)"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Members []Member `json:"members,omitempty" gorm:"many2many:channel_members;joinForeignKey:ChannelID;joinReferences:MemberID"`
}

// TableName returns the database table name for Channel.
func (Channel) TableName() string { return "channels" }

// PrimaryKey returns the resource id.
func (c Channel) PrimaryKey() string { return c.ID }

// ChannelMember is a row of the channel_members join table. Rows are written
// explicitly by the channel repository so membership changes stay inside the
// channel's transaction.
type ChannelMember struct {
	ChannelID string `gorm:"type:char(36);primaryKey"`
	MemberID  string `gorm:"type:char(36);primaryKey;index"`
}

// TableName returns the database table name for ChannelMember.
func (ChannelMember) TableName() string { return "channel_members" }

// Content is a publication owned by a channel. Its body is an ordered list
// of blocks that is always replaced as a whole.
type Content struct {
	ID          string        `json:"id"                  gorm:"type:char(36);primaryKey"`
	Title       string        `json:"title"               gorm:"type:varchar(255);not null;uniqueIndex:ux_contents_title"`
	Description string        `json:"description"         gorm:"type:text;not null"`
	ThumbURI    *string       `json:"thumb_uri,omitempty" gorm:"type:varchar(33)"`
	ChannelID   string        `json:"channel_id"          gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Body        []ContentBody `json:"body"                gorm:"foreignKey:ContentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// Channel is the publishing channel. A channel with contents cannot be
	// deleted.
	Channel *Channel `json:"channel,omitempty" gorm:"foreignKey:ChannelID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Content.
func (Content) TableName() string { return "contents" }

// PrimaryKey returns the resource id.
func (c Content) PrimaryKey() string { return c.ID }

// ContentBody is one block of a content, ordered by Position.
type ContentBody struct {
	ID        string      `json:"id"       gorm:"type:char(36);primaryKey"`
	ContentID string      `json:"-"        gorm:"type:char(36);not null;index:idx_body_content,priority:1"`
	Position  int         `json:"position" gorm:"not null;default:0;index:idx_body_content,priority:2"`
	Type      ContentType `json:"type"     gorm:"type:varchar(16);not null;default:'text';check:type IN ('text','video','audio')"`
	Value     string      `json:"value"    gorm:"type:text;not null"`
}

// TableName returns the database table name for ContentBody.
func (ContentBody) TableName() string { return "content_body" }

// ListOf wraps v for a JSON array column. nil becomes an empty list so the
// column never holds "null".
func ListOf(v []string) datatypes.JSONSlice[string] {
	if v == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](v)
}
