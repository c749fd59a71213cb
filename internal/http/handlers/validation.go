// Request validation.
//
// Payloads are bound with gin's validator (go-playground/validator). This file
// turns its failures into the per-field English sentences returned in 400
// bodies, e.g. "email must be an email" or
// "each value in website must be a URL address". Field names are the JSON
// names; nested elements use dotted paths ("body.0.type").
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/platcon/platcon-api/internal/resmsg"
)

var registerJSONNames sync.Once

// useJSONFieldNames makes validator report JSON names instead of Go field
// names. Safe to call repeatedly.
func useJSONFieldNames() {
	registerJSONNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			switch name {
			case "-":
				return ""
			case "":
				return f.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the request body into dst. On failure it
// returns the messages for a 400 response. An empty body is validated as
// the zero value so missing required fields are reported individually.
func bindJSON(c *gin.Context, dst any) []string {
	err := c.ShouldBindJSON(dst)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(dst)
	}
	if err == nil {
		return nil
	}
	return validationMessages(err)
}

// validationMessages renders a binding error as client-facing sentences.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fieldMessage(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []string{resmsg.New().MustBe(field, jsonKindName(typeErr.Type)).String()}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []string{resmsg.New().MustBe("body", "valid JSON").String()}
	}

	return []string{err.Error()}
}

// fieldMessage renders one validator failure.
func fieldMessage(fe validator.FieldError) string {
	field, each := fieldPath(fe)
	b := resmsg.New()

	switch fe.Tag() {
	case "required":
		b.ShouldNotBeEmpty(field)
	case "min":
		switch {
		case fe.Param() == "1":
			b.ShouldNotBeEmpty(field)
		case fe.Kind() == reflect.String:
			b.Custom(field + " must be longer than or equal to " + fe.Param() + " characters")
		default:
			b.Custom(field + " must contain at least " + fe.Param() + " elements")
		}
	case "max":
		if fe.Kind() == reflect.String {
			b.Custom(field + " must be shorter than or equal to " + fe.Param() + " characters")
		} else {
			b.Custom(field + " must contain no more than " + fe.Param() + " elements")
		}
	case "email":
		b.MustBe(field, "an email")
	case "uuid", "uuid4":
		b.MustBe(field, "a UUID")
	case "url":
		b.MustBe(field, "a URL address")
	case "oneof":
		b.MustBe(field, "one of the following values: "+strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		b.Custom(field + " is invalid")
	}

	if each {
		b.Each()
	}
	return b.String()
}

// fieldPath converts a validator namespace such as
// "CreateContentInput.body[0].type" into "body.0.type". each reports whether
// the failing value is an element of a scalar array ("website[1]"), which is
// named by its array instead.
func fieldPath(fe validator.FieldError) (path string, each bool) {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	if strings.HasSuffix(ns, "]") {
		if i := strings.LastIndexByte(ns, '['); i >= 0 {
			ns = ns[:i]
			each = true
		}
	}
	ns = strings.NewReplacer("[", ".", "]", "").Replace(ns)
	return ns, each
}

func jsonKindName(t reflect.Type) string {
	if t == nil {
		return "valid"
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean value"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Map, reflect.Struct:
		return "an object"
	}
	return "valid"
}

// isUUID accepts only the canonical 36-character form.
func isUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// invalidIDMessage is returned for path ids that are not UUIDs.
func invalidIDMessage() string { return resmsg.New().MustBe("id", "a UUID").String() }
