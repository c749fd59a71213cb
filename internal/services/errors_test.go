package services

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platcon/platcon-api/internal/apperr"
	"github.com/platcon/platcon-api/internal/domain"
	"github.com/platcon/platcon-api/internal/resmsg"
)

func TestToHTTPError_Mapping(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name       string
		err        error
		id, fk     string
		wantStatus int
		wantMsg    string
	}{
		{"unique", apperr.UniqueViolation(), "", "", http.StatusConflict, "member with stage_name already exists"},
		{"fk", apperr.FKViolation(), "", "u1", http.StatusNotFound, "User with id={u1} does not exist"},
		{"not found", apperr.NotFound(), "m1", "", http.StatusNotFound, "member id={m1} not found"},
		{"unaffected", apperr.Unaffected(), "m2", "", http.StatusNotFound, "member id={m2} not found"},
		{"state conflict", apperr.StateConflict(), "m3", "", http.StatusConflict,
			"Request with member id={m3} can't be completed due to a conflict with the current state of the resource"},
		{"validation", apperr.Validation("id must be a UUID"), "", "", http.StatusBadRequest, "id must be a UUID"},
		{"unexpected", apperr.Unexpected("disk full"), "m4", "", http.StatusInternalServerError, resmsg.UnexpectedText},
		{"unclassified", errors.New("raw driver error"), "", "", http.StatusInternalServerError, resmsg.UnexpectedText},
		{"wrapped", errors.Join(errors.New("ctx"), apperr.NotFound()), "m5", "", http.StatusNotFound, "member id={m5} not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			he := toHTTPError(ctx, MemberEntity, tc.err, tc.id, tc.fk)
			assert.Equal(t, tc.wantStatus, he.Status)
			require.Len(t, he.Messages, 1)
			assert.Equal(t, tc.wantMsg, he.Messages[0])
		})
	}
}

func TestToHTTPError_FKWithoutReferenceIsInternal(t *testing.T) {
	he := toHTTPError(context.Background(), UserEntity, apperr.FKViolation(), "", "")
	assert.Equal(t, http.StatusInternalServerError, he.Status)
}

func TestToHTTPError_PassesHTTPErrorThrough(t *testing.T) {
	in := resmsg.BadRequest("name should not be empty")
	assert.Same(t, in, toHTTPError(context.Background(), UserEntity, in, "", ""))
}

func TestToHTTPError_LogsUnexpectedDetail(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	he := toHTTPError(ctx, ContentEntity, apperr.Unexpected("too many connections"), "c1", "")

	assert.Equal(t, http.StatusInternalServerError, he.Status)
	assert.NotContains(t, he.Error(), "too many connections")
	assert.Contains(t, buf.String(), "too many connections")
	assert.Contains(t, buf.String(), `"entity":"content"`)
}

func TestEntityTable(t *testing.T) {
	assert.Equal(t, "User", MemberEntity.RefLabel)
	assert.Equal(t, "Member", ChannelEntity.RefLabel)
	assert.Equal(t, "Channel", ContentEntity.RefLabel)
	assert.Empty(t, UserEntity.RefLabel)

	assert.Equal(t, "name", ChannelEntity.UniqueField)
	assert.Equal(t, "title", ContentEntity.UniqueField)

	ch := "c9"
	assert.Equal(t, "c9", ContentEntity.fkOfUpdate(domain.UpdateContentInput{ChannelID: &ch}))
	assert.Empty(t, ContentEntity.fkOfUpdate(domain.UpdateContentInput{}))
	assert.Empty(t, UserEntity.fkOfCreate(domain.CreateUserInput{}))
}
