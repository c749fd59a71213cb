package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/platcon/platcon-api/internal/domain"
)

// Entity labels as they appear in messages.
const (
	LabelUser    = "user"
	LabelMember  = "member"
	LabelChannel = "channel"
	LabelContent = "content"
)

type (
	UserService    = CRUDService[domain.User, domain.CreateUserInput, domain.UpdateUserInput]
	MemberService  = CRUDService[domain.Member, domain.CreateMemberInput, domain.UpdateMemberInput]
	ChannelService = CRUDService[domain.Channel, domain.CreateChannelInput, domain.UpdateChannelInput]
	ContentService = CRUDService[domain.Content, domain.CreateContentInput, domain.UpdateContentInput]

	UserRepo    = Repo[domain.User, domain.CreateUserInput, domain.UpdateUserInput]
	MemberRepo  = Repo[domain.Member, domain.CreateMemberInput, domain.UpdateMemberInput]
	ChannelRepo = Repo[domain.Channel, domain.CreateChannelInput, domain.UpdateChannelInput]
	ContentRepo = Repo[domain.Content, domain.CreateContentInput, domain.UpdateContentInput]
)

var titleCaser = cases.Title(language.English)

// refLabel capitalises a referenced entity label for FK messages.
func refLabel(label string) string { return titleCaser.String(label) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// UserEntity describes users: unique by email, no outgoing reference.
var UserEntity = Entity[domain.CreateUserInput, domain.UpdateUserInput]{
	Label:       LabelUser,
	UniqueField: "email",
}

// MemberEntity describes members: unique by stage_name, optionally owned by
// a user.
var MemberEntity = Entity[domain.CreateMemberInput, domain.UpdateMemberInput]{
	Label:       LabelMember,
	UniqueField: "stage_name",
	RefLabel:    refLabel(LabelUser),
	FKOfCreate:  func(in domain.CreateMemberInput) string { return deref(in.UserID) },
	FKOfUpdate:  func(in domain.UpdateMemberInput) string { return deref(in.UserID) },
}

// ChannelEntity describes channels: unique by name, referencing members.
var ChannelEntity = Entity[domain.CreateChannelInput, domain.UpdateChannelInput]{
	Label:       LabelChannel,
	UniqueField: "name",
	RefLabel:    refLabel(LabelMember),
	FKOfCreate:  func(in domain.CreateChannelInput) string { return strings.Join(in.Members, ",") },
	FKOfUpdate:  func(in domain.UpdateChannelInput) string { return strings.Join(in.Members, ",") },
}

// ContentEntity describes contents: unique by title, published by a channel.
var ContentEntity = Entity[domain.CreateContentInput, domain.UpdateContentInput]{
	Label:       LabelContent,
	UniqueField: "title",
	RefLabel:    refLabel(LabelChannel),
	FKOfCreate:  func(in domain.CreateContentInput) string { return in.ChannelID },
	FKOfUpdate:  func(in domain.UpdateContentInput) string { return deref(in.ChannelID) },
}

// NewUserService constructs the user service.
func NewUserService(db *gorm.DB, r UserRepo) *UserService {
	return NewCRUDService(db, r, UserEntity)
}

// NewMemberService constructs the member service.
func NewMemberService(db *gorm.DB, r MemberRepo) *MemberService {
	return NewCRUDService(db, r, MemberEntity)
}

// NewChannelService constructs the channel service.
func NewChannelService(db *gorm.DB, r ChannelRepo) *ChannelService {
	return NewCRUDService(db, r, ChannelEntity)
}

// NewContentService constructs the content service.
func NewContentService(db *gorm.DB, r ContentRepo) *ContentService {
	return NewCRUDService(db, r, ContentEntity)
}
