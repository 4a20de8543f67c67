// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"brookside/internal/content"
	"brookside/internal/storage"
)

// maxUploadSize is the maximum allowed file upload size (10 MB).
const maxUploadSize = 10 << 20

// Uploads handles media uploads for blog covers and page images.
type Uploads struct {
	store *storage.Client
}

// NewUploads creates a new Uploads handler group. store may be nil
// when object storage is not configured; uploads then return 503.
func NewUploads(store *storage.Client) *Uploads {
	return &Uploads{store: store}
}

// Upload stores a multipart file in the media bucket and returns its
// public URL.
func (h *Uploads) Upload(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondFail(w, http.StatusServiceUnavailable, "file storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, &content.ValidationError{Field: "file", Msg: "exceeds the upload size limit"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, &content.ValidationError{Field: "file", Msg: "is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, r, fmt.Errorf("read upload: %w", err))
		return
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		respondError(w, r, &content.ValidationError{Field: "file", Msg: "must be an image"})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	now := time.Now()
	key := fmt.Sprintf("media/%d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), ext)

	if err := h.store.Upload(r.Context(), key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		respondError(w, r, fmt.Errorf("upload to storage: %w", err))
		return
	}

	respond(w, http.StatusCreated, map[string]string{
		"key": key,
		"url": h.store.FileURL(key),
	})
}

// Delete removes a previously uploaded file, addressed by its public
// URL or bare key in the ?url= query parameter.
func (h *Uploads) Delete(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondFail(w, http.StatusServiceUnavailable, "file storage is not configured")
		return
	}

	rawURL := r.URL.Query().Get("url")
	key, ok := h.store.ExtractKey(rawURL)
	if !ok {
		respondError(w, r, &content.ValidationError{Field: "url", Msg: "does not point at managed storage"})
		return
	}

	if err := h.store.Delete(r.Context(), key); err != nil {
		respondError(w, r, fmt.Errorf("delete from storage: %w", err))
		return
	}
	respondMessage(w, http.StatusOK, "file deleted")
}
