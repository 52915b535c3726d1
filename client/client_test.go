package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferSchema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, http.MethodPost)
		assert.Equal(t, r.URL.Path, "/v1/schema")
		assert.Equal(t, r.Header.Get("Content-Type"), "application/json")

		body, err := io.ReadAll(r.Body)
		assert.Nil(t, err)
		assert.Equal(t, string(body), `{"a": 1}`)

		w.Write([]byte(`{"type":"object"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	assert.Nil(t, err)

	out, err := c.InferSchema(context.Background(), []byte(`{"a": 1}`))
	assert.Nil(t, err)
	assert.Equal(t, string(out), `{"type":"object"}`)
}

func TestGenerateTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.URL.Path, "/v1/types")
		assert.Equal(t, r.URL.Query().Get("pkg"), "api")
		assert.Equal(t, r.URL.Query().Get("type"), "Reply")

		w.Write([]byte("package api\n"))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	assert.Nil(t, err)

	out, err := c.GenerateTypes(context.Background(), []byte(`{}`), "api", "Reply")
	assert.Nil(t, err)
	assert.Equal(t, string(out), "package api\n")
}

func TestGenerateTypesDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.URL.RawQuery, "")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	assert.Nil(t, err)

	_, err = c.GenerateTypes(context.Background(), []byte(`{}`), "", "")
	assert.Nil(t, err)
}

func TestInferSchemaServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	assert.Nil(t, err)

	_, err = c.InferSchema(context.Background(), []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}
