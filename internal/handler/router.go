package handler

import (
	"github.com/anz-davar/giuson/internal/middleware"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Auth      *AuthHandler
	Commander *CommanderHandler
	HR        *HRHandler
	Volunteer *VolunteerHandler
}

// Mount registers the /api routes on r.
func Mount(r chi.Router, store repository.Store, identifier middleware.Identifier, h Handlers) {
	authenticated := middleware.Authenticate(store, identifier)
	jsonOnly := chimw.AllowContentType("application/json")

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(jsonOnly)
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		r.Route("/commander", func(r chi.Router) {
			r.Use(jsonOnly)
			r.Use(authenticated)
			r.Use(middleware.RequireRole(model.RoleCommander))

			r.Post("/jobs", h.Commander.CreateJob)
			r.Get("/jobs", h.Commander.ListJobs)
			r.Patch("/jobs/{jobID}", h.Commander.PatchJob)
			r.Get("/jobs/{jobID}/applications", h.Commander.JobApplications)
			r.Get("/jobs/{jobID}/applications/export", h.Commander.ExportApplications)
			r.Get("/volunteers/{volunteerID}", h.Commander.Volunteer)
			r.Put("/applications/{applicationID}/status", h.Commander.UpdateApplicationStatus)
			r.Post("/applications/{applicationID}/interview", h.Commander.ScheduleInterview)
			r.Put("/interviews/{interviewID}/results", h.Commander.RecordInterviewResults)
		})

		r.Route("/hr", func(r chi.Router) {
			r.Use(jsonOnly)
			r.Post("/hr", h.HR.CreateHR)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.Use(middleware.RequireRole(model.RoleHR))

				r.Post("/volunteers", h.HR.CreateVolunteer)
				r.Get("/volunteers", h.HR.ListVolunteers)
				r.Get("/volunteers/{volunteerID}", h.HR.GetVolunteer)
				r.Put("/volunteers/{volunteerID}", h.HR.UpdateVolunteer)
				r.Get("/volunteers/{volunteerID}/applications", h.HR.VolunteerApplications)
				r.Get("/jobs", h.HR.ListJobs)
				r.Get("/jobs/{jobID}/applications", h.HR.JobApplications)
				r.Post("/assignments", h.HR.Assign)
				r.Get("/applications/{applicationID}/history", h.HR.ApplicationHistory)
			})
		})

		r.Route("/volunteer", func(r chi.Router) {
			r.Use(authenticated)
			r.Use(middleware.RequireRole(model.RoleVolunteer))

			r.Post("/jobs/{jobID}/resume", h.Volunteer.UploadResume)

			r.Group(func(r chi.Router) {
				r.Use(jsonOnly)
				r.Get("/jobs", h.Volunteer.ListJobs)
				r.Post("/jobs/{jobID}/apply", h.Volunteer.Apply)
				r.Delete("/jobs/{jobID}/apply", h.Volunteer.Withdraw)
				r.Get("/jobs/{jobID}/check-application", h.Volunteer.CheckApplication)
				r.Patch("/{userID}", h.Volunteer.UpdateProfile)
			})
		})
	})
}
