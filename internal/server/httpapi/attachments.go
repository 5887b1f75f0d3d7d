package httpapi

import "net/http"

type presignUploadResponse struct {
	FileKey   string `json:"fileKey"`
	UploadURL string `json:"uploadUrl"`
}

func (s *Server) presignUpload(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.attachments.PresignUpload(r.Context(), ownerFromContext(r.Context()))
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, presignUploadResponse{FileKey: key, UploadURL: url})
}

type presignDownloadResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

func (s *Server) presignDownload(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	url, err := s.attachments.PresignDownload(r.Context(), ownerFromContext(r.Context()), key)
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, presignDownloadResponse{DownloadURL: url})
}
