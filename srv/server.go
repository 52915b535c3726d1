package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/siegeai/sleuth/gen"
	"github.com/siegeai/sleuth/infer"
	"github.com/siegeai/sleuth/render"
	"github.com/siegeai/sleuth/schema"
	"github.com/urfave/negroni"
)

type server struct {
	router *mux.Router
}

func newServer() *server {
	return &server{router: mux.NewRouter().StrictSlash(true)}
}

func (s *server) setupRoutes() {
	s.router.HandleFunc("/healthz", s.handleHealthz()).Methods("GET")
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	s.router.HandleFunc("/v1/schema", s.handleInferSchema()).Methods("POST")
	s.router.HandleFunc("/v1/types", s.handleGenerateTypes()).Methods("POST")
	s.router.Use(logMiddleware)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := negroni.NewResponseWriter(w)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.Info("request",
			"method", r.Method,
			"uri", r.RequestURI,
			"status", ww.Status(),
			"dur", time.Since(start))
	})
}

func (*server) handleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	}
}

func (s *server) handleInferSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		node, ok := s.inferBody(w, r)
		if !ok {
			return
		}

		switch format := r.URL.Query().Get("format"); format {
		case "", "json":
			bs, err := render.JSON(node)
			if err != nil {
				respondError(w, http.StatusInternalServerError, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write(bs)
		case "yaml":
			bs, err := render.YAML(node)
			if err != nil {
				respondError(w, http.StatusInternalServerError, err)
				return
			}
			w.Header().Set("Content-Type", "application/yaml")
			w.Write(bs)
		case "openapi":
			bs, err := render.OpenAPIJSON(node)
			if err != nil {
				respondError(w, http.StatusInternalServerError, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write(bs)
		default:
			respondError(w, http.StatusBadRequest, fmt.Errorf("unknown format %q", format))
		}
	}
}

func (s *server) handleGenerateTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		node, ok := s.inferBody(w, r)
		if !ok {
			return
		}

		pkg := r.URL.Query().Get("pkg")
		if pkg == "" {
			pkg = "main"
		}
		name := r.URL.Query().Get("type")
		if name == "" {
			name = "Root"
		}

		src, err := gen.File(node, pkg, name)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write(src)
	}
}

// inferBody reads, decodes and infers the request document, answering
// the request itself when something is off.
func (s *server) inferBody(w http.ResponseWriter, r *http.Request) (*schema.Node, bool) {
	start := time.Now()
	body, err := decodeBody(r)
	if err != nil {
		inferTotal.WithLabelValues("error").Inc()
		respondError(w, http.StatusBadRequest, err)
		return nil, false
	}

	n, err := infer.Document(body)
	if err != nil {
		inferTotal.WithLabelValues("error").Inc()
		respondError(w, http.StatusBadRequest, err)
		return nil, false
	}

	inferTotal.WithLabelValues("ok").Inc()
	inferDuration.Observe(time.Since(start).Seconds())
	return n, true
}

func respondError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
