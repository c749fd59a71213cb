// Package resmsg builds the human-readable messages returned by the API and
// wraps them into the success and error payloads clients consume.
//
// A Builder is a plain value created per call site:
//
//	resmsg.For("user", id).NotFound().HTTPBody(http.StatusNotFound)
//	// {"message":"user id={…} not found","error":"Not Found","statusCode":404}
//
// Appending operations (Entity, NotFound, Conflict with a field, MustBe,
// ShouldNotBeEmpty, Each, Custom) extend the accumulated text. Replacing
// operations (Conflict without a field, FKNotFound, Unexpected) discard it,
// re-embedding only what they explicitly mention. Updated, Deleted and
// HTTPBody are terminal and return data, not a Builder.
package resmsg

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// UnexpectedText is the fixed client-visible text for unclassified failures.
const UnexpectedText = "An unexpected error occurred while performing operation"

// Builder accumulates a message.
type Builder struct {
	msg string
}

// Message is the success payload shape.
type Message struct {
	Message string `json:"message" example:"user id={8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10} deleted successfully"`
}

// ErrorBody is the error payload shape. Message is a []string for 400
// responses and a string otherwise.
type ErrorBody struct {
	Message    any    `json:"message" swaggertype:"string" example:"user id={8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10} not found"`
	Error      string `json:"error" example:"Not Found"`
	StatusCode int    `json:"statusCode" example:"404"`
}

// New returns an empty Builder.
func New() *Builder { return &Builder{} }

// For is shorthand for New().Entity(name, id...).
func For(name string, id ...string) *Builder { return New().Entity(name, id...) }

// Entity appends the subject name and, when given and non-empty, " id={<id>}".
func (b *Builder) Entity(name string, id ...string) *Builder {
	b.msg += name
	if len(id) > 0 && id[0] != "" {
		b.msg += " id={" + id[0] + "}"
	}
	return b
}

// String returns the accumulated text.
func (b *Builder) String() string { return b.msg }

// Updated finalises a success message embedding the JSON of where. where
// should be a typed struct so the output is reproducible.
func (b *Builder) Updated(where any) Message {
	return Message{Message: b.msg + " updated successfully, where: " + compactJSON(where)}
}

// Deleted finalises a success message.
func (b *Builder) Deleted() Message {
	return Message{Message: b.msg + " deleted successfully"}
}

// NotFound appends " not found".
func (b *Builder) NotFound() *Builder {
	b.msg += " not found"
	return b
}

// FKNotFound replaces the message with "<ref> with id={<fk>} does not exist".
func (b *Builder) FKNotFound(ref, fk string) *Builder {
	b.msg = ref + " with id={" + fk + "} does not exist"
	return b
}

// MustBe appends "<field> must be <desc>", e.g. MustBe("id", "a UUID").
func (b *Builder) MustBe(field, desc string) *Builder {
	b.msg += field + " must be " + desc
	return b
}

// ShouldNotBeEmpty appends "<field> should not be empty".
func (b *Builder) ShouldNotBeEmpty(field string) *Builder {
	b.msg += field + " should not be empty"
	return b
}

// Custom appends free text, used for validation rules without a dedicated verb.
func (b *Builder) Custom(text string) *Builder {
	b.msg += text
	return b
}

// Each prefixes "each value in ", for array element failures.
func (b *Builder) Each() *Builder {
	b.msg = "each value in " + b.msg
	return b
}

// Conflict appends " with <field> already exists" when a field is given.
// Without one it replaces the message with a generic state-conflict sentence
// that embeds the subject accumulated so far.
func (b *Builder) Conflict(uniqueField ...string) *Builder {
	if len(uniqueField) > 0 && uniqueField[0] != "" {
		b.msg += " with " + uniqueField[0] + " already exists"
		return b
	}
	b.msg = "Request with " + b.msg + " can't be completed due to a conflict with the current state of the resource"
	return b
}

// Unexpected replaces the message with UnexpectedText.
func (b *Builder) Unexpected() *Builder {
	b.msg = UnexpectedText
	return b
}

// HTTPBody finalises into the error payload for status.
func (b *Builder) HTTPBody(status int) ErrorBody {
	return NewErrorBody(status, b.msg)
}

// NewErrorBody builds the error payload for status from one or more
// messages. For 400 the messages are always an array; otherwise the first
// message is used as a plain string.
func NewErrorBody(status int, msgs ...string) ErrorBody {
	body := ErrorBody{Error: http.StatusText(status), StatusCode: status}
	if status == http.StatusBadRequest {
		list := make([]string, 0, len(msgs))
		list = append(list, msgs...)
		body.Message = list
		return body
	}
	if len(msgs) > 0 {
		body.Message = msgs[0]
	} else {
		body.Message = ""
	}
	return body
}

// compactJSON renders v without HTML escaping or a trailing newline.
func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
