// Package api exposes credential encoding and QR rendering over HTTP.
package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"wifiqr/internal/files"
	"wifiqr/internal/render"
	"wifiqr/internal/utils"
)

// Server bundles the dependencies the handlers need.
type Server struct {
	store    *files.Store
	renderer render.Renderer
	log      *utils.Logger
	defaults render.Options
}

// NewServer wires a Server. defaults supplies the error-correction level and
// pixel size used when a request does not specify them.
func NewServer(store *files.Store, renderer render.Renderer, log *utils.Logger, defaults render.Options) *Server {
	return &Server{store: store, renderer: renderer, log: log, defaults: defaults}
}

// Router returns the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/wifi/encode", s.EncodeHandler).Methods("POST")
	r.HandleFunc("/wifi/qr", s.RenderHandler).Methods("POST")
	r.HandleFunc("/wifi/codes", s.ListCodesHandler).Methods("GET")
	r.HandleFunc("/wifi/codes", s.ClearCodesHandler).Methods("DELETE")
	return r
}
