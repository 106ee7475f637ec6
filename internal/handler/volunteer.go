package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
	"github.com/anz-davar/giuson/internal/service"
)

// VolunteerHandler serves /api/volunteer behind the volunteer role gate.
type VolunteerHandler struct {
	store          repository.Store
	directory      *service.DirectoryService
	applications   *service.ApplicationService
	resumes        *service.ResumeService
	maxResumeBytes int64
}

func NewVolunteerHandler(store repository.Store, directory *service.DirectoryService, applications *service.ApplicationService, resumes *service.ResumeService, maxResumeBytes int64) *VolunteerHandler {
	return &VolunteerHandler{
		store:          store,
		directory:      directory,
		applications:   applications,
		resumes:        resumes,
		maxResumeBytes: maxResumeBytes,
	}
}

type ResumeUploadedResponse struct {
	Message  string `json:"message"`
	ResumeID uint   `json:"resume_id"`
}

type CheckApplicationResponse struct {
	AlreadyApplied bool `json:"alreadyApplied"`
}

func (h *VolunteerHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.directory.OpenJobs(r.Context(), h.store.Session(r.Context()))
	if err != nil {
		handleError(w, r, "List jobs error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, jobs)
}

func (h *VolunteerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "Apply error", err)
		return
	}
	jobID, err := urlParamID(r, "jobID")
	if err != nil {
		handleError(w, r, "Apply error", err)
		return
	}
	var input service.ApplyInput
	if err := decodeJSON(w, r, &input, true); err != nil {
		handleError(w, r, "Apply error", err)
		return
	}

	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		_, err := h.applications.Apply(r.Context(), uow, id.ProfileID, jobID, input)
		return err
	})
	if err != nil {
		handleError(w, r, "Apply error", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, MessageResponse{Message: "Application submitted successfully"})
}

func (h *VolunteerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "Withdraw error", err)
		return
	}
	jobID, err := urlParamID(r, "jobID")
	if err != nil {
		handleError(w, r, "Withdraw error", err)
		return
	}

	var app *model.JobApplication
	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		var err error
		app, err = h.applications.Withdraw(r.Context(), uow, id.ProfileID, jobID)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			respondWithError(w, http.StatusNotFound, "No application found")
			return
		}
		handleError(w, r, "Withdraw error", err)
		return
	}

	if app.Resume != nil {
		h.resumes.Discard(r.Context(), app.Resume.FilePath)
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Application deleted successfully"})
}

func (h *VolunteerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "Update profile error", err)
		return
	}
	userID, err := urlParamID(r, "userID")
	if err != nil {
		handleError(w, r, "Update profile error", err)
		return
	}
	if userID != id.UserID {
		handleError(w, r, "Update profile error", fmt.Errorf("%w: user %d may not edit user %d", domain.ErrForbidden, id.UserID, userID))
		return
	}
	fields, err := decodeFields(w, r)
	if err != nil {
		handleError(w, r, "Update profile error", err)
		return
	}

	var detail *service.VolunteerDetail
	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		var err error
		detail, err = h.directory.UpdateOwnProfile(r.Context(), uow, userID, fields)
		return err
	})
	if err != nil {
		handleError(w, r, "Update profile error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *VolunteerHandler) UploadResume(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "Resume upload error", err)
		return
	}
	jobID, err := urlParamID(r, "jobID")
	if err != nil {
		handleError(w, r, "Resume upload error", err)
		return
	}

	// Leave room for the multipart framing around the file.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxResumeBytes+maxBodyBytes)
	if err := r.ParseMultipartForm(h.maxResumeBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(w, r, "Resume upload error", domain.ErrResumeTooLarge)
			return
		}
		handleError(w, r, "Resume upload error", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("resume")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			respondWithError(w, http.StatusBadRequest, "No resume file uploaded")
			return
		}
		handleError(w, r, "Resume upload error", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	defer file.Close()

	var (
		resume   *model.Resume
		previous string
	)
	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		var err error
		resume, previous, err = h.resumes.Upload(r.Context(), uow, id.ProfileID, jobID, service.ResumeUpload{
			Filename: header.Filename,
			Content:  file,
		})
		return err
	})
	if err != nil {
		if resume != nil {
			h.resumes.Discard(r.Context(), resume.FilePath)
		}
		handleError(w, r, "Resume upload error", err)
		return
	}

	if previous != "" && previous != resume.FilePath {
		h.resumes.Discard(r.Context(), previous)
	}
	respondWithJSON(w, http.StatusCreated, ResumeUploadedResponse{
		Message:  "Resume uploaded successfully",
		ResumeID: resume.ID,
	})
}

func (h *VolunteerHandler) CheckApplication(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "Check application error", err)
		return
	}
	jobID, err := urlParamID(r, "jobID")
	if err != nil {
		handleError(w, r, "Check application error", err)
		return
	}

	applied, err := h.applications.HasApplied(r.Context(), h.store.Session(r.Context()), id.ProfileID, jobID)
	if err != nil {
		handleError(w, r, "Check application error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, CheckApplicationResponse{AlreadyApplied: applied})
}
