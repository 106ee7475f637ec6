package handler

import (
	"net/http"

	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
	"github.com/anz-davar/giuson/internal/service"
)

// HRHandler serves /api/hr. CreateHR is public, everything else runs behind
// the HR role gate.
type HRHandler struct {
	store        repository.Store
	hr           *service.HRService
	applications *service.ApplicationService
	notifier     *service.Notifier
}

func NewHRHandler(store repository.Store, hr *service.HRService, applications *service.ApplicationService, notifier *service.Notifier) *HRHandler {
	return &HRHandler{
		store:        store,
		hr:           hr,
		applications: applications,
		notifier:     notifier,
	}
}

type HRCreatedResponse struct {
	Message string `json:"message"`
	HRID    uint   `json:"hr_id"`
}

type VolunteerCreatedResponse struct {
	Message     string `json:"message"`
	VolunteerID uint   `json:"volunteer_id"`
}

type VolunteerUpdatedResponse struct {
	Message     string                   `json:"message"`
	VolunteerID uint                     `json:"volunteer_id"`
	Volunteer   *service.VolunteerDetail `json:"volunteer"`
}

type AssignmentRequest struct {
	VolunteerID uint `json:"volunteer_id"`
	JobID       uint `json:"job_id"`
}

type AssignmentResponse struct {
	Message       string `json:"message"`
	ApplicationID uint   `json:"application_id"`
}

func (h *HRHandler) create(w http.ResponseWriter, r *http.Request, build func(repository.UnitOfWork, []byte) (*model.Account, error)) (*model.Account, bool) {
	body, err := readBody(w, r)
	if err != nil {
		handleError(w, r, "Create account error", err)
		return nil, false
	}

	var account *model.Account
	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		var err error
		account, err = build(uow, body)
		return err
	})
	if err != nil {
		handleError(w, r, "Create account error", err)
		return nil, false
	}
	return account, true
}

func (h *HRHandler) CreateHR(w http.ResponseWriter, r *http.Request) {
	account, ok := h.create(w, r, func(uow repository.UnitOfWork, body []byte) (*model.Account, error) {
		return h.hr.CreateHR(r.Context(), uow, body)
	})
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusCreated, HRCreatedResponse{
		Message: "HR user created successfully",
		HRID:    account.Profile.ProfileID(),
	})
}

func (h *HRHandler) CreateVolunteer(w http.ResponseWriter, r *http.Request) {
	account, ok := h.create(w, r, func(uow repository.UnitOfWork, body []byte) (*model.Account, error) {
		return h.hr.CreateVolunteer(r.Context(), uow, body)
	})
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusCreated, VolunteerCreatedResponse{
		Message:     "Volunteer created successfully",
		VolunteerID: account.Profile.ProfileID(),
	})
}

func (h *HRHandler) ListVolunteers(w http.ResponseWriter, r *http.Request) {
	volunteers, err := h.hr.ListVolunteers(r.Context(), h.store.Session(r.Context()))
	if err != nil {
		handleError(w, r, "List volunteers error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, volunteers)
}

func (h *HRHandler) GetVolunteer(w http.ResponseWriter, r *http.Request) {
	volunteerID, err := urlParamID(r, "volunteerID")
	if err != nil {
		handleError(w, r, "Volunteer lookup error", err)
		return
	}

	detail, err := h.hr.Volunteer(r.Context(), h.store.Session(r.Context()), volunteerID)
	if err != nil {
		handleError(w, r, "Volunteer lookup error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *HRHandler) UpdateVolunteer(w http.ResponseWriter, r *http.Request) {
	volunteerID, err := urlParamID(r, "volunteerID")
	if err != nil {
		handleError(w, r, "Update volunteer error", err)
		return
	}
	fields, err := decodeFields(w, r)
	if err != nil {
		handleError(w, r, "Update volunteer error", err)
		return
	}

	var detail *service.VolunteerDetail
	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		var err error
		detail, err = h.hr.UpdateVolunteer(r.Context(), uow, volunteerID, fields)
		return err
	})
	if err != nil {
		handleError(w, r, "Update volunteer error", err)
		return
	}

	respondWithJSON(w, http.StatusOK, VolunteerUpdatedResponse{
		Message:     "Volunteer updated successfully",
		VolunteerID: volunteerID,
		Volunteer:   detail,
	})
}

func (h *HRHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.hr.Jobs(r.Context(), h.store.Session(r.Context()))
	if err != nil {
		handleError(w, r, "List jobs error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, jobs)
}

func (h *HRHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		handleError(w, r, "Assignment error", err)
		return
	}
	var req AssignmentRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(w, r, "Assignment error", err)
		return
	}
	if req.VolunteerID == 0 || req.JobID == 0 {
		respondWithError(w, http.StatusBadRequest, "Missing volunteer_id or job_id")
		return
	}

	var app *model.JobApplication
	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		var err error
		app, err = h.applications.AssignToJob(r.Context(), uow, id.ProfileID, req.VolunteerID, req.JobID)
		return err
	})
	if err != nil {
		handleError(w, r, "Assignment error", err)
		return
	}

	h.notifier.Hired(r.Context(), app)

	respondWithJSON(w, http.StatusOK, AssignmentResponse{
		Message:       "Volunteer assigned successfully",
		ApplicationID: app.ID,
	})
}

func (h *HRHandler) VolunteerApplications(w http.ResponseWriter, r *http.Request) {
	volunteerID, err := urlParamID(r, "volunteerID")
	if err != nil {
		handleError(w, r, "List applications error", err)
		return
	}

	apps, err := h.hr.VolunteerApplications(r.Context(), h.store.Session(r.Context()), volunteerID)
	if err != nil {
		handleError(w, r, "List applications error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, apps)
}

func (h *HRHandler) JobApplications(w http.ResponseWriter, r *http.Request) {
	jobID, err := urlParamID(r, "jobID")
	if err != nil {
		handleError(w, r, "List applications error", err)
		return
	}

	apps, err := h.hr.JobApplications(r.Context(), h.store.Session(r.Context()), jobID)
	if err != nil {
		handleError(w, r, "List applications error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, apps)
}

func (h *HRHandler) ApplicationHistory(w http.ResponseWriter, r *http.Request) {
	applicationID, err := urlParamID(r, "applicationID")
	if err != nil {
		handleError(w, r, "Application history error", err)
		return
	}

	events, err := h.applications.History(r.Context(), h.store.Session(r.Context()), applicationID)
	if err != nil {
		handleError(w, r, "Application history error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, events)
}
