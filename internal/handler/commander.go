package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
	"github.com/anz-davar/giuson/internal/service"
)

// CommanderHandler serves /api/commander. Every route runs behind the
// commander role gate.
type CommanderHandler struct {
	store        repository.Store
	directory    *service.DirectoryService
	applications *service.ApplicationService
	notifier     *service.Notifier
}

func NewCommanderHandler(store repository.Store, directory *service.DirectoryService, applications *service.ApplicationService, notifier *service.Notifier) *CommanderHandler {
	return &CommanderHandler{
		store:        store,
		directory:    directory,
		applications: applications,
		notifier:     notifier,
	}
}

type JobCreatedResponse struct {
	Message string `json:"message"`
	JobID   uint   `json:"job_id"`
}

type JobUpdatedResponse struct {
	Message string              `json:"message"`
	Job     *service.JobSummary `json:"job"`
}

type InterviewCreatedResponse struct {
	Message     string `json:"message"`
	InterviewID uint   `json:"interview_id"`
}

type InterviewUpdatedResponse struct {
	Message   string           `json:"message"`
	Interview *model.Interview `json:"interview"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *CommanderHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "Create job error", err)
		return
	}

	var input service.CreateJobInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		handleError(w, r, "Create job error", err)
		return
	}

	var job *model.Job
	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		var err error
		job, err = h.directory.CreateJob(r.Context(), uow, id.ProfileID, input)
		return err
	})
	if err != nil {
		handleError(w, r, "Create job error", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, JobCreatedResponse{
		Message: "Job created successfully",
		JobID:   job.ID,
	})
}

func (h *CommanderHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "List jobs error", err)
		return
	}

	jobs, err := h.directory.CommanderJobs(r.Context(), h.store.Session(r.Context()), id.ProfileID)
	if err != nil {
		handleError(w, r, "List jobs error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, jobs)
}

func (h *CommanderHandler) PatchJob(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "Update job error", err)
		return
	}
	jobID, err := urlParamID(r, "jobID")
	if err != nil {
		handleError(w, r, "Update job error", err)
		return
	}
	fields, err := decodeFields(w, r)
	if err != nil {
		handleError(w, r, "Update job error", err)
		return
	}

	var summary *service.JobSummary
	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		var err error
		summary, err = h.directory.PatchJob(r.Context(), uow, id.ProfileID, jobID, fields)
		return err
	})
	if err != nil {
		handleError(w, r, "Update job error", err)
		return
	}

	respondWithJSON(w, http.StatusOK, JobUpdatedResponse{
		Message: "Job updated successfully",
		Job:     summary,
	})
}

func (h *CommanderHandler) JobApplications(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "List applicants error", err)
		return
	}
	jobID, err := urlParamID(r, "jobID")
	if err != nil {
		handleError(w, r, "List applicants error", err)
		return
	}

	applicants, err := h.directory.JobApplicants(r.Context(), h.store.Session(r.Context()), id.ProfileID, jobID)
	if err != nil {
		handleError(w, r, "List applicants error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, applicants)
}

func (h *CommanderHandler) Volunteer(w http.ResponseWriter, r *http.Request) {
	volunteerID, err := urlParamID(r, "volunteerID")
	if err != nil {
		handleError(w, r, "Volunteer lookup error", err)
		return
	}

	view, err := h.directory.Volunteer(r.Context(), h.store.Session(r.Context()), volunteerID)
	if err != nil {
		handleError(w, r, "Volunteer lookup error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

func (h *CommanderHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "Status update error", err)
		return
	}
	applicationID, err := urlParamID(r, "applicationID")
	if err != nil {
		handleError(w, r, "Status update error", err)
		return
	}
	var req StatusUpdateRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(w, r, "Status update error", err)
		return
	}

	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		_, err := h.applications.UpdateStatus(r.Context(), uow, id.ProfileID, applicationID, req.Status)
		return err
	})
	if err != nil {
		handleError(w, r, "Status update error", err)
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Status updated successfully"})
}

func (h *CommanderHandler) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "Schedule interview error", err)
		return
	}
	applicationID, err := urlParamID(r, "applicationID")
	if err != nil {
		handleError(w, r, "Schedule interview error", err)
		return
	}
	var input service.InterviewInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		handleError(w, r, "Schedule interview error", err)
		return
	}

	var interview *model.Interview
	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		var err error
		interview, err = h.applications.ScheduleInterview(r.Context(), uow, id.ProfileID, applicationID, input)
		return err
	})
	if err != nil {
		handleError(w, r, "Schedule interview error", err)
		return
	}

	h.notifier.InterviewScheduled(r.Context(), interview)

	respondWithJSON(w, http.StatusCreated, InterviewCreatedResponse{
		Message:     "Interview scheduled successfully",
		InterviewID: interview.ID,
	})
}

func (h *CommanderHandler) RecordInterviewResults(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "Interview results error", err)
		return
	}
	interviewID, err := urlParamID(r, "interviewID")
	if err != nil {
		handleError(w, r, "Interview results error", err)
		return
	}
	var input service.InterviewResultsInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		handleError(w, r, "Interview results error", err)
		return
	}

	var interview *model.Interview
	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		var err error
		interview, err = h.applications.RecordInterviewResults(r.Context(), uow, id.ProfileID, interviewID, input)
		return err
	})
	if err != nil {
		handleError(w, r, "Interview results error", err)
		return
	}

	respondWithJSON(w, http.StatusOK, InterviewUpdatedResponse{
		Message:   "Interview results updated successfully",
		Interview: interview,
	})
}

func (h *CommanderHandler) ExportApplications(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "Export error", err)
		return
	}
	jobID, err := urlParamID(r, "jobID")
	if err != nil {
		handleError(w, r, "Export error", err)
		return
	}

	data, err := h.directory.ExportApplicationsCSV(r.Context(), h.store.Session(r.Context()), id.ProfileID, jobID)
	if err != nil {
		handleError(w, r, "Export error", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=applications_job_%d.csv", jobID))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
