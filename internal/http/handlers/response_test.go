package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/platcon/platcon-api/internal/resmsg"
)

func Test_fail_500_LogsAndBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// capture logs from LoggerFrom(c)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r.Use(func(c *gin.Context) {
		c.Set("logger", &logger)
		c.Next()
	})

	r.GET("/boom", func(c *gin.Context) {
		fail(c, resmsg.Internal())
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}

	var resp struct {
		Message    string `json:"message"`
		Error      string `json:"error"`
		StatusCode int    `json:"statusCode"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Message != resmsg.UnexpectedText || resp.Error != "Internal Server Error" || resp.StatusCode != 500 {
		t.Fatalf("unexpected body: %+v", resp)
	}

	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("expected error log, got: %s", buf.String())
	}
}

func Test_Fail_404_StringMessage_And_400_Array(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/missing", func(c *gin.Context) {
		Fail(c, http.StatusNotFound, "Cannot GET /missing")
	})
	r.GET("/bad", func(c *gin.Context) {
		badRequest(c, "name should not be empty", "email must be an email")
	})
	r.GET("/ok", func(c *gin.Context) {
		ok(c, http.StatusCreated, gin.H{"ok": true, "n": 1})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"message":"Cannot GET /missing","error":"Not Found","statusCode":404}` {
		t.Fatalf("unexpected 404 body: %s", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
	var bad struct {
		Message []string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &bad); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(bad.Message) != 2 || bad.Message[1] != "email must be an email" {
		t.Fatalf("unexpected 400 messages: %v", bad.Message)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d", w.Code)
	}
	var okBody map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &okBody)
	if okBody["ok"] != true || okBody["n"].(float64) != 1 {
		t.Fatalf("unexpected ok body: %v", okBody)
	}
}

func Test_respondErr_UnmappedErrorIsInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { respondErr(c, errors.New("raw")) })
	r.GET("/y", func(c *gin.Context) { respondErr(c, resmsg.Conflict("user with email already exists")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusInternalServerError || strings.Contains(w.Body.String(), "raw") {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/y", nil))
	if w.Code != http.StatusConflict || !strings.Contains(w.Body.String(), "already exists") {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
