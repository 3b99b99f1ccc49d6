package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/service"
	"github.com/bnema/vidqa/internal/validation"
	"github.com/go-chi/chi/v5"
)

type AnalysisService interface {
	StartAnalysis(ctx context.Context, req service.AnalysisRequest) (string, error)
	Status(jobID string) (*domain.Job, error)
	List() ([]*domain.Job, error)
	Result(jobID string) (*domain.AnalysisResult, error)
	Report(ctx context.Context, jobID, format string) (string, string, error)
	ListRemoteFormats(ctx context.Context, url string) (*domain.RemoteInfo, error)
}

type MediaService interface {
	SubmitMedia(filename string, file io.ReadSeeker, size int64) (*domain.Upload, error)
}

const (
	// slack on top of the file size limit for multipart boundaries and headers
	multipartOverhead = 1 << 20
	multipartMemory   = 32 << 20
	maxJSONBody       = 64 << 10
)

type Handlers struct {
	analysis AnalysisService
	media    MediaService
	maxBytes int64
	version  string
}

func NewHandlers(analysis AnalysisService, media MediaService, maxBytes int64, version string) *Handlers {
	return &Handlers{
		analysis: analysis,
		media:    media,
		maxBytes: maxBytes,
		version:  version,
	}
}

type startResponse struct {
	JobID   string           `json:"job_id"`
	Status  domain.JobStatus `json:"status"`
	Message string           `json:"message"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *Handlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: h.version})
	}
}

// Upload stores a multipart "file" part and returns where it was saved.
func (h *Handlers) Upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeServiceError(w, "upload", domain.ErrUploadTooLarge)
				return
			}
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file field")
			return
		}
		defer file.Close()

		upload, err := h.media.SubmitMedia(header.Filename, file, header.Size)
		if err != nil {
			writeServiceError(w, fmt.Sprintf("upload %s", logger.SanitizeForLog(header.Filename)), err)
			return
		}

		writeJSON(w, http.StatusCreated, upload)
	}
}

func (h *Handlers) StartAnalysis() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req service.AnalysisRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		jobID, err := h.analysis.StartAnalysis(r.Context(), req)
		if err != nil {
			writeServiceError(w, "start analysis", err)
			return
		}

		writeJSON(w, http.StatusAccepted, startResponse{
			JobID:   jobID,
			Status:  domain.JobStatusPending,
			Message: "analysis started",
		})
	}
}

func (h *Handlers) ListAnalyses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := h.analysis.List()
		if err != nil {
			writeServiceError(w, "list analyses", err)
			return
		}
		writeJSON(w, http.StatusOK, jobs)
	}
}

func (h *Handlers) Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := h.analysis.Status(chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, "job status", err)
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

func (h *Handlers) Result() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.analysis.Result(chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, "job result", err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// Report streams the rendered report as a download.
func (h *Handlers) Report() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID := chi.URLParam(r, "id")
		path, contentType, err := h.analysis.Report(r.Context(), jobID, r.URL.Query().Get("format"))
		if err != nil {
			writeServiceError(w, fmt.Sprintf("report for %s", jobID), err)
			return
		}

		f, err := os.Open(path)
		if err != nil {
			writeServiceError(w, fmt.Sprintf("open report for %s", jobID), err)
			return
		}
		defer f.Close()

		stat, err := f.Stat()
		if err != nil {
			writeServiceError(w, fmt.Sprintf("stat report for %s", jobID), err)
			return
		}

		name := "vidqa-" + jobID + filepath.Ext(path)
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", validation.ContentDisposition(name, false))
		http.ServeContent(w, r, name, stat.ModTime(), f)
	}
}

func (h *Handlers) Formats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := h.analysis.ListRemoteFormats(r.Context(), r.URL.Query().Get("url"))
		if err != nil {
			if statusFor(err) == http.StatusInternalServerError {
				logger.Warn.Printf("format listing failed: %v", err)
				writeError(w, http.StatusBadGateway, "failed to query platform")
				return
			}
			writeServiceError(w, "list formats", err)
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}
