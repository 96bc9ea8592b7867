package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"wifiqr/internal/render"
	"wifiqr/internal/wifi"
)

type credentialRequest struct {
	SSID     string `json:"ssid"`
	Password string `json:"password"`
	Auth     string `json:"auth"`
	Hidden   bool   `json:"hidden"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// parseCredential decodes and validates the request body. Auth defaults to
// WPA when omitted.
func parseCredential(r *http.Request) (wifi.Credential, error) {
	var req credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return wifi.Credential{}, errors.New("invalid JSON body")
	}
	if req.Auth == "" {
		req.Auth = "wpa"
	}
	auth, err := wifi.ParseAuth(req.Auth)
	if err != nil {
		return wifi.Credential{}, err
	}
	return wifi.New(req.SSID, req.Password, auth, req.Hidden)
}

// EncodeHandler validates a credential, records its metadata, and returns
// the encoded payload.
func (s *Server) EncodeHandler(w http.ResponseWriter, r *http.Request) {
	cred, err := parseCredential(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := s.store.Save(cred.SSID(), cred.Auth().String(), cred.Hidden())
	if err != nil {
		s.log.Error("save record: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to record code")
		return
	}
	s.log.Info("encoded payload for ssid %q", cred.SSID())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"id":      rec.ID,
		"payload": cred.Encode(),
	})
}

// renderOptions resolves level and size query parameters against the server
// defaults.
func (s *Server) renderOptions(r *http.Request) (render.Options, error) {
	o := s.defaults
	if v := r.URL.Query().Get("level"); v != "" {
		level, err := render.ParseECLevel(v)
		if err != nil {
			return render.Options{}, err
		}
		o.Level = level
	}
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return render.Options{}, render.ErrSizeTooSmall
		}
		o.Size = n
	}
	return o, nil
}

// RenderHandler validates a credential and returns it as a scannable code in
// the requested format: png (default), svg, or matrix.
func (s *Server) RenderHandler(w http.ResponseWriter, r *http.Request) {
	cred, err := parseCredential(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts, err := s.renderOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := s.store.Save(cred.SSID(), cred.Auth().String(), cred.Hidden()); err != nil {
		s.log.Warn("save record: %v", err)
	}

	payload := cred.Encode()
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}
	switch format {
	case "png":
		png, err := s.renderer.PNG(payload, opts)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	case "svg":
		var buf bytes.Buffer
		if err := s.renderer.SVG(payload, opts, &buf); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(buf.Bytes())
	case "matrix":
		m, err := s.renderer.Matrix(payload, opts)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(m)
	default:
		writeError(w, http.StatusBadRequest, "unknown format: "+format)
	}
}

// ListCodesHandler returns the stored generation records.
func (s *Server) ListCodesHandler(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.GetAll()
	if err != nil {
		s.log.Error("list records: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to read records")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// ClearCodesHandler removes all stored generation records.
func (s *Server) ClearCodesHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(); err != nil {
		s.log.Error("clear records: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to clear records")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
