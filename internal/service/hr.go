package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
)

// HRService holds the operations HR staff run over volunteers and jobs.
type HRService struct {
	auth      *AuthService
	directory *DirectoryService
	now       func() time.Time
}

func NewHRService(auth *AuthService, directory *DirectoryService) *HRService {
	return &HRService{
		auth:      auth,
		directory: directory,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateHR registers an HR account from a request body.
func (s *HRService) CreateHR(ctx context.Context, uow repository.UnitOfWork, body []byte) (*model.Account, error) {
	return s.register(ctx, uow, body, model.RoleHR)
}

// CreateVolunteer registers a volunteer account on the volunteer's behalf.
func (s *HRService) CreateVolunteer(ctx context.Context, uow repository.UnitOfWork, body []byte) (*model.Account, error) {
	return s.register(ctx, uow, body, model.RoleVolunteer)
}

func (s *HRService) register(ctx context.Context, uow repository.UnitOfWork, body []byte, role model.Role) (*model.Account, error) {
	reg, err := DecodeRegistrationAs(body, role)
	if err != nil {
		return nil, err
	}
	return s.auth.Register(ctx, uow, reg)
}

func (s *HRService) ListVolunteers(ctx context.Context, uow repository.UnitOfWork) ([]VolunteerSummary, error) {
	volunteers, err := uow.Profiles().ListVolunteers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]VolunteerSummary, 0, len(volunteers))
	for i := range volunteers {
		out = append(out, newVolunteerSummary(&volunteers[i]))
	}
	return out, nil
}

func (s *HRService) Volunteer(ctx context.Context, uow repository.UnitOfWork, volunteerID uint) (*VolunteerDetail, error) {
	v, err := uow.Profiles().FindVolunteerByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	return newVolunteerDetail(v, s.now()), nil
}

// UpdateVolunteer applies an allow-listed edit. HR may also correct the
// national id.
func (s *HRService) UpdateVolunteer(ctx context.Context, uow repository.UnitOfWork, volunteerID uint, fields map[string]json.RawMessage) (*VolunteerDetail, error) {
	if _, err := uow.Profiles().FindVolunteerByID(ctx, volunteerID); err != nil {
		return nil, err
	}
	return s.directory.updateVolunteer(ctx, uow, volunteerID, hrVolunteerPatchTable(s.directory.phones), fields)
}

// Jobs lists every job with its commander and application count.
func (s *HRService) Jobs(ctx context.Context, uow repository.UnitOfWork) ([]HRJob, error) {
	jobs, err := uow.Jobs().ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(jobs))
	for i := range jobs {
		ids[i] = jobs[i].ID
	}
	counts, err := uow.Jobs().CountApplications(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]HRJob, 0, len(jobs))
	for _, job := range jobs {
		row := HRJob{
			ID:                job.ID,
			Title:             job.Title,
			VacantPositions:   job.VacantPositions,
			Status:            job.Status,
			ApplicationsCount: counts[job.ID],
		}
		if job.Commander != nil {
			row.CommanderName = job.Commander.Name
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *HRService) VolunteerApplications(ctx context.Context, uow repository.UnitOfWork, volunteerID uint) ([]VolunteerApplication, error) {
	if _, err := uow.Profiles().FindVolunteerByID(ctx, volunteerID); err != nil {
		return nil, err
	}
	apps, err := uow.Applications().ListByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	out := make([]VolunteerApplication, 0, len(apps))
	for _, app := range apps {
		row := VolunteerApplication{
			ID:              app.ID,
			JobID:           app.JobID,
			Status:          app.Status,
			ApplicationDate: app.ApplicationDate,
		}
		if app.Job != nil {
			row.JobTitle = app.Job.Title
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *HRService) JobApplications(ctx context.Context, uow repository.UnitOfWork, jobID uint) ([]JobApplication, error) {
	if _, err := uow.Jobs().FindByID(ctx, jobID); err != nil {
		return nil, err
	}
	apps, err := uow.Applications().ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	out := make([]JobApplication, 0, len(apps))
	for _, app := range apps {
		row := JobApplication{
			ID:              app.ID,
			VolunteerID:     app.VolunteerID,
			Status:          app.Status,
			ApplicationDate: app.ApplicationDate,
		}
		if app.Volunteer != nil {
			row.VolunteerName = app.Volunteer.FullName
		}
		out = append(out, row)
	}
	return out, nil
}
