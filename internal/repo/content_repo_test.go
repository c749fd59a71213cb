package repo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platcon/platcon-api/internal/apperr"
	"github.com/platcon/platcon-api/internal/domain"
)

func bodyValues(b []domain.ContentBody) []string {
	out := make([]string, 0, len(b))
	for _, x := range b {
		out = append(out, x.Value)
	}
	return out
}

func TestCreateContent_WithBody(t *testing.T) {
	db := newSchemaDB(t)
	ctx := context.Background()
	ch := seedChannel(t, db)

	c, err := CreateContent(ctx, db, domain.CreateContentInput{
		Title:       "Episode 1",
		Description: "Pilot",
		ThumbURI:    uri33(),
		ChannelID:   ch.ID,
		Body: []domain.ContentBodyInput{
			{Type: domain.ContentText, Value: "intro"},
			{Type: domain.ContentVideo, Value: "https://cdn.example.com/v.mp4"},
			{Value: "outro"},
		},
	})
	require.NoError(t, err)
	require.Len(t, c.Body, 3)
	assert.Equal(t, domain.ContentText, c.Body[2].Type)

	got, err := GetContent(ctx, db, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"intro", "https://cdn.example.com/v.mp4", "outro"}, bodyValues(got.Body))
	for i, b := range got.Body {
		assert.Equal(t, i, b.Position)
	}
	require.NotNil(t, got.Channel)
	assert.Equal(t, ch.Name, got.Channel.Name)
}

func TestCreateContent_UnknownChannelWritesNothing(t *testing.T) {
	db := newSchemaDB(t)
	ctx := context.Background()

	_, err := CreateContent(ctx, db, domain.CreateContentInput{
		Title: "orphan", Description: "d", ChannelID: uuid.NewString(),
		Body: []domain.ContentBodyInput{{Type: domain.ContentText, Value: "x"}},
	})
	assert.True(t, apperr.Is(err, apperr.KindFKViolation), "got %v", err)

	n, err := CountContents(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, n)

	var bodies int64
	require.NoError(t, db.Model(&domain.ContentBody{}).Count(&bodies).Error)
	assert.Zero(t, bodies)
}

func TestCreateContent_DuplicateTitle(t *testing.T) {
	db := newSchemaDB(t)
	ch := seedChannel(t, db)
	c := seedContent(t, db, ch.ID)

	_, err := CreateContent(context.Background(), db, domain.CreateContentInput{
		Title: c.Title, Description: "d", ChannelID: ch.ID,
	})
	assert.True(t, apperr.Is(err, apperr.KindUniqueViolation), "got %v", err)
}

func TestListContents(t *testing.T) {
	db := newSchemaDB(t)
	ctx := context.Background()
	ch := seedChannel(t, db)
	a := seedContent(t, db, ch.ID, domain.ContentBodyInput{Type: domain.ContentAudio, Value: "a"})
	b := seedContent(t, db, ch.ID)

	all, err := ListContents(ctx, db)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Len(t, all[0].Body, 1)
	assert.NotNil(t, all[0].Channel)
	assert.Equal(t, b.ID, all[1].ID)

	page, err := ListContentsPage(ctx, db, 0, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, a.ID, page[0].ID)
}

func TestUpdateContent_ReplacesBody(t *testing.T) {
	db := newSchemaDB(t)
	ctx := context.Background()
	ch := seedChannel(t, db)
	c := seedContent(t, db, ch.ID,
		domain.ContentBodyInput{Type: domain.ContentText, Value: "old-1"},
		domain.ContentBodyInput{Type: domain.ContentText, Value: "old-2"},
	)

	require.NoError(t, UpdateContent(ctx, db, c.ID, domain.UpdateContentInput{
		Title: strPtr("Renamed"),
		Body:  []domain.ContentBodyInput{{Type: domain.ContentAudio, Value: "new"}},
	}))

	got, err := GetContent(ctx, db, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, []string{"new"}, bodyValues(got.Body))
	assert.Equal(t, domain.ContentAudio, got.Body[0].Type)
}

func TestUpdateContent_NilBodyKeepsBody(t *testing.T) {
	db := newSchemaDB(t)
	ctx := context.Background()
	ch := seedChannel(t, db)
	c := seedContent(t, db, ch.ID, domain.ContentBodyInput{Type: domain.ContentText, Value: "keep"})

	require.NoError(t, UpdateContent(ctx, db, c.ID, domain.UpdateContentInput{Description: strPtr("d2")}))

	got, err := GetContent(ctx, db, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "d2", got.Description)
	assert.Equal(t, []string{"keep"}, bodyValues(got.Body))
}

func TestUpdateContent_Errors(t *testing.T) {
	db := newSchemaDB(t)
	ctx := context.Background()
	ch := seedChannel(t, db)
	a := seedContent(t, db, ch.ID)
	b := seedContent(t, db, ch.ID, domain.ContentBodyInput{Type: domain.ContentText, Value: "stay"})

	err := UpdateContent(ctx, db, b.ID, domain.UpdateContentInput{
		Title: &a.Title,
		Body:  []domain.ContentBodyInput{{Type: domain.ContentText, Value: "gone"}},
	})
	assert.True(t, apperr.Is(err, apperr.KindUniqueViolation), "got %v", err)

	got, err := GetContent(ctx, db, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"stay"}, bodyValues(got.Body))

	ghost := uuid.NewString()
	err = UpdateContent(ctx, db, b.ID, domain.UpdateContentInput{ChannelID: &ghost})
	assert.True(t, apperr.Is(err, apperr.KindFKViolation), "got %v", err)

	err = UpdateContent(ctx, db, uuid.NewString(), domain.UpdateContentInput{
		Body: []domain.ContentBodyInput{{Type: domain.ContentText, Value: "x"}},
	})
	assert.True(t, apperr.Is(err, apperr.KindUnaffected), "got %v", err)
}

func TestDeleteContent_RemovesBody(t *testing.T) {
	db := newSchemaDB(t)
	ctx := context.Background()
	ch := seedChannel(t, db)
	c := seedContent(t, db, ch.ID, domain.ContentBodyInput{Type: domain.ContentText, Value: "x"})

	require.NoError(t, DeleteContent(ctx, db, c.ID))

	var bodies int64
	require.NoError(t, db.Model(&domain.ContentBody{}).Where("content_id = ?", c.ID).Count(&bodies).Error)
	assert.Zero(t, bodies)

	err := DeleteContent(ctx, db, c.ID)
	assert.True(t, apperr.Is(err, apperr.KindUnaffected), "got %v", err)

	require.NoError(t, DeleteChannel(ctx, db, ch.ID))
}
