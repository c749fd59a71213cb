package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/platcon/platcon-api/internal/domain"
)

// bindVia runs bindJSON inside a real gin context for body.
func bindVia[T any](t *testing.T, body string) []string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	useJSONFieldNames()

	var msgs []string
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var in T
		msgs = bindJSON(c, &in)
	})
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, "/", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	}
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)
	return msgs
}

func TestBindJSON_Valid(t *testing.T) {
	msgs := bindVia[domain.CreateUserInput](t, `{"name":"Ana","email":"ana@example.com","password":"p"}`)
	assert.Nil(t, msgs)
}

func TestBindJSON_EmptyBodyReportsEachRequiredField(t *testing.T) {
	msgs := bindVia[domain.CreateUserInput](t, "")
	assert.ElementsMatch(t, []string{
		"name should not be empty",
		"email should not be empty",
		"password should not be empty",
	}, msgs)
}

func TestBindJSON_FieldRules(t *testing.T) {
	cases := []struct {
		name string
		bind func(t *testing.T) []string
		want []string
	}{
		{
			"email",
			func(t *testing.T) []string {
				return bindVia[domain.CreateUserInput](t, `{"name":"a","email":"nope","password":"p"}`)
			},
			[]string{"email must be an email"},
		},
		{
			"avatar length",
			func(t *testing.T) []string {
				return bindVia[domain.CreateUserInput](t, `{"name":"a","email":"a@b.co","password":"p","avatar_uri":"short"}`)
			},
			[]string{"avatar_uri must be longer than or equal to 33 characters"},
		},
		{
			"avatar too long",
			func(t *testing.T) []string {
				return bindVia[domain.UpdateUserInput](t, `{"avatar_uri":"`+strings.Repeat("x", 34)+`"}`)
			},
			[]string{"avatar_uri must be shorter than or equal to 33 characters"},
		},
		{
			"role enum",
			func(t *testing.T) []string {
				return bindVia[domain.UpdateUserInput](t, `{"role":"admin"}`)
			},
			[]string{"role must be one of the following values: producer, user"},
		},
		{
			"website urls",
			func(t *testing.T) []string {
				return bindVia[domain.CreateMemberInput](t, `{"stage_name":"s","description":"d","website":["https://ok.example.com","not a url"]}`)
			},
			[]string{"each value in website must be a URL address"},
		},
		{
			"user id",
			func(t *testing.T) []string {
				return bindVia[domain.CreateMemberInput](t, `{"stage_name":"s","description":"d","user_id":"123"}`)
			},
			[]string{"user_id must be a UUID"},
		},
		{
			"empty tags",
			func(t *testing.T) []string {
				return bindVia[domain.CreateChannelInput](t, `{"name":"n","description":"d","tags":[]}`)
			},
			[]string{"tags should not be empty"},
		},
		{
			"member ids",
			func(t *testing.T) []string {
				return bindVia[domain.CreateChannelInput](t, `{"name":"n","description":"d","tags":["x"],"members":["bad"]}`)
			},
			[]string{"each value in members must be a UUID"},
		},
		{
			"body block type",
			func(t *testing.T) []string {
				return bindVia[domain.CreateContentInput](t, `{"title":"t","description":"d","channel_id":"8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10","body":[{"type":"image","value":"v"}]}`)
			},
			[]string{"body.0.type must be one of the following values: text, video, audio"},
		},
		{
			"blank patch field",
			func(t *testing.T) []string {
				return bindVia[domain.UpdateChannelInput](t, `{"name":""}`)
			},
			[]string{"name should not be empty"},
		},
		{
			"type mismatch",
			func(t *testing.T) []string {
				return bindVia[domain.CreateChannelInput](t, `{"name":"n","description":"d","tags":"music"}`)
			},
			[]string{"tags must be an array"},
		},
		{
			"malformed json",
			func(t *testing.T) []string {
				return bindVia[domain.CreateChannelInput](t, `{"name":`)
			},
			[]string{"body must be valid JSON"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.bind(t))
		})
	}
}

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10"))
	assert.False(t, isUUID("8a1c1b7e0c534f579d0e6c1d2f7b9a10"))
	assert.False(t, isUUID("{8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10}"))
	assert.False(t, isUUID("not-a-uuid"))
	assert.False(t, isUUID(""))
	assert.Equal(t, "id must be a UUID", invalidIDMessage())
}
