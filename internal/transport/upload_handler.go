package transport

import (
	"net/http"

	"printmill-be/internal/upload"
	"printmill-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

// maxUploadMemory bounds how much of a multipart body is buffered in memory
// before spilling to temp files.
const maxUploadMemory = 25 << 20

type UploadHandler struct {
	uploads upload.Service
}

func NewUploadHandler(uploads upload.Service) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// POST /upload
//
// Accepts one or more print files under the "files" multipart field and
// returns a FileRef per file for the client to embed in cart line options.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserFromContext(r.Context()); !ok {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		respondError(w, http.StatusBadRequest, "Missing files field")
		return
	}

	refs := make([]upload.FileRef, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			respondError(w, http.StatusBadRequest, "Unreadable file part")
			return
		}

		ref, err := h.uploads.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
		file.Close()
		if err != nil {
			respondServiceError(w, err)
			return
		}
		refs = append(refs, *ref)
	}

	respondJSON(w, http.StatusOK, map[string]any{"files": refs})
}

// GET /uploads/{filename}
//
// Existence check only; the path it echoes is what clients store in
// FileRefs.
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if _, err := h.uploads.Resolve(filename); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"path": "/uploads/" + filename})
}
