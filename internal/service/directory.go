package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
)

type JobQuestionInput struct {
	Text     string `json:"text" validate:"required"`
	Required bool   `json:"required"`
}

// CreateJobInput accepts the title as either name or title. Questions is a
// free text string or a list of JobQuestionInput.
type CreateJobInput struct {
	Name                 string          `json:"name" validate:"required_without=Title,max=100"`
	Title                string          `json:"title" validate:"max=100"`
	Description          string          `json:"description"`
	Positions            *int            `json:"positions" validate:"omitempty,min=0"`
	Category             string          `json:"category" validate:"max=50"`
	Unit                 string          `json:"unit" validate:"max=100"`
	Address              string          `json:"address" validate:"max=200"`
	OpenBase             *bool           `json:"openBase"`
	AdditionalInfo       string          `json:"additionalInfo"`
	Questions            json.RawMessage `json:"questions"`
	CommonAnswers        string          `json:"commonAnswers"`
	Education            string          `json:"education"`
	TechSkills           string          `json:"techSkills"`
	WorkExperience       string          `json:"workExperience"`
	PassedCourses        string          `json:"passedCourses"`
	RequiredCertificates string          `json:"requiredCertificates"`
	RequiredLanguages    string          `json:"requiredLanguages"`
	HourlySalary         *float64        `json:"hourlySalary" validate:"omitempty,min=0"`
	WeeklySalaryCap      *float64        `json:"weeklySalaryCap" validate:"omitempty,min=0"`
}

// CSVHeader is the first row of an applications export.
var CSVHeader = []string{
	"Application ID",
	"Volunteer Name",
	"Status",
	"Application Date",
	"Phone",
	"Email",
	"Education",
	"Interview Status",
}

// DirectoryService reads and edits jobs and volunteer profiles.
type DirectoryService struct {
	phones PhoneNormalizer
	now    func() time.Time
}

func NewDirectoryService(phones PhoneNormalizer) *DirectoryService {
	return &DirectoryService{
		phones: phones,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateJob posts a new open job owned by commanderID. Positions defaults
// to 1 and openBase to true.
func (s *DirectoryService) CreateJob(ctx context.Context, uow repository.UnitOfWork, commanderID uint, input CreateJobInput) (*model.Job, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	job := &model.Job{
		CommanderID:          commanderID,
		Title:                strings.TrimSpace(input.Name),
		Description:          input.Description,
		VacantPositions:      1,
		Category:             input.Category,
		Unit:                 input.Unit,
		Address:              input.Address,
		IsOpenBase:           true,
		Status:               model.JobStatusOpen,
		AdditionalInfo:       input.AdditionalInfo,
		CommonAnswers:        input.CommonAnswers,
		Education:            input.Education,
		Experience:           input.WorkExperience,
		TechSkills:           input.TechSkills,
		PassedCourses:        input.PassedCourses,
		RequiredCertificates: input.RequiredCertificates,
		RequiredLanguages:    input.RequiredLanguages,
		HourlySalary:         input.HourlySalary,
		WeeklySalaryCap:      input.WeeklySalaryCap,
	}
	if job.Title == "" {
		job.Title = strings.TrimSpace(input.Title)
	}
	if job.Title == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if input.Positions != nil {
		job.VacantPositions = *input.Positions
	}
	if input.OpenBase != nil {
		job.IsOpenBase = *input.OpenBase
	}

	common, questions, err := decodeQuestions(input.Questions)
	if err != nil {
		return nil, err
	}
	job.CommonQuestions = common
	job.Questions = questions

	if err := uow.Jobs().Create(ctx, job); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Job created",
		"jobID", job.ID,
		"commanderID", commanderID,
		"positions", job.VacantPositions,
	)
	return job, nil
}

func decodeQuestions(raw json.RawMessage) (string, []model.JobQuestion, error) {
	if len(raw) == 0 || isNull(raw) {
		return "", nil, nil
	}

	var common string
	if err := json.Unmarshal(raw, &common); err == nil {
		return common, nil, nil
	}

	var inputs []JobQuestionInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return "", nil, invalid(raw, "string or list of questions")
	}
	questions := make([]model.JobQuestion, 0, len(inputs))
	for i, in := range inputs {
		in.Text = strings.TrimSpace(in.Text)
		if err := validateStruct(in); err != nil {
			return "", nil, fmt.Errorf("questions[%d]: %w", i, err)
		}
		questions = append(questions, model.JobQuestion{Text: in.Text, Required: in.Required})
	}
	return "", questions, nil
}

// CommanderJobs lists the jobs of commanderID with their application counts.
func (s *DirectoryService) CommanderJobs(ctx context.Context, uow repository.UnitOfWork, commanderID uint) ([]JobSummary, error) {
	jobs, err := uow.Jobs().ListByCommander(ctx, commanderID)
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

	summaries := make([]JobSummary, 0, len(jobs))
	for i := range jobs {
		summaries = append(summaries, newJobSummary(&jobs[i], counts[jobs[i].ID]))
	}
	return summaries, nil
}

// ownedJob loads jobID and checks that commanderID owns it.
func ownedJob(ctx context.Context, uow repository.UnitOfWork, commanderID, jobID uint) (*model.Job, error) {
	job, err := uow.Jobs().FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CommanderID != commanderID {
		return nil, fmt.Errorf("%w: job %d belongs to another commander", domain.ErrForbidden, jobID)
	}
	return job, nil
}

// PatchJob applies an allow-listed partial update to a job owned by
// commanderID.
func (s *DirectoryService) PatchJob(ctx context.Context, uow repository.UnitOfWork, commanderID, jobID uint, fields map[string]json.RawMessage) (*JobSummary, error) {
	if _, err := ownedJob(ctx, uow, commanderID, jobID); err != nil {
		return nil, err
	}

	updates, err := jobPatchTable().apply(fields)
	if err != nil {
		return nil, err
	}
	if err := uow.Jobs().Update(ctx, jobID, updates); err != nil {
		return nil, err
	}

	job, err := uow.Jobs().FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	commander, err := uow.Profiles().FindCommanderByID(ctx, commanderID)
	if err != nil {
		return nil, err
	}
	job.Commander = commander

	counts, err := uow.Jobs().CountApplications(ctx, []uint{jobID})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Job updated", "jobID", jobID, "commanderID", commanderID, "fields", len(updates))
	summary := newJobSummary(job, counts[jobID])
	return &summary, nil
}

// OpenJobs lists the jobs volunteers can apply for.
func (s *DirectoryService) OpenJobs(ctx context.Context, uow repository.UnitOfWork) ([]OpenJob, error) {
	jobs, err := uow.Jobs().ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]OpenJob, 0, len(jobs))
	for _, job := range jobs {
		questions := job.Questions
		if questions == nil {
			questions = []model.JobQuestion{}
		}
		out = append(out, OpenJob{
			ID:              job.ID,
			Title:           job.Title,
			Description:     job.Description,
			VacantPositions: job.VacantPositions,
			Category:        job.Category,
			Unit:            job.Unit,
			Address:         job.Address,
			IsOpenBase:      job.IsOpenBase,
			Questions:       questions,
		})
	}
	return out, nil
}

// JobApplicants lists the applications on a job owned by commanderID.
func (s *DirectoryService) JobApplicants(ctx context.Context, uow repository.UnitOfWork, commanderID, jobID uint) ([]Applicant, error) {
	if _, err := ownedJob(ctx, uow, commanderID, jobID); err != nil {
		return nil, err
	}
	apps, err := uow.Applications().ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]Applicant, 0, len(apps))
	for _, app := range apps {
		a := Applicant{
			ApplicationID:   app.ID,
			VolunteerID:     app.VolunteerID,
			Status:          app.Status,
			ApplicationDate: app.ApplicationDate,
		}
		if v := app.Volunteer; v != nil {
			a.CandidateUserID = v.UserID
			a.Name = v.FullName
			a.Age = ageOf(v, now)
		}
		out = append(out, a)
	}
	return out, nil
}

// Volunteer returns the commander's view of a volunteer, including the
// status of each of their applications keyed by job id.
func (s *DirectoryService) Volunteer(ctx context.Context, uow repository.UnitOfWork, volunteerID uint) (*VolunteerView, error) {
	v, err := uow.Profiles().FindVolunteerByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	apps, err := uow.Applications().ListByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	return newVolunteerView(v, apps, s.now()), nil
}

// UpdateOwnProfile applies a volunteer's edit of their own profile.
func (s *DirectoryService) UpdateOwnProfile(ctx context.Context, uow repository.UnitOfWork, userID uint, fields map[string]json.RawMessage) (*VolunteerDetail, error) {
	v, err := uow.Profiles().FindVolunteerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.updateVolunteer(ctx, uow, v.ID, volunteerPatchTable(s.phones), fields)
}

func (s *DirectoryService) updateVolunteer(ctx context.Context, uow repository.UnitOfWork, volunteerID uint, table patchTable, fields map[string]json.RawMessage) (*VolunteerDetail, error) {
	updates, err := table.apply(fields)
	if err != nil {
		return nil, err
	}
	if err := uow.Profiles().UpdateVolunteer(ctx, volunteerID, updates); err != nil {
		return nil, err
	}

	v, err := uow.Profiles().FindVolunteerByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Volunteer updated", "volunteerID", volunteerID, "fields", len(updates))
	return newVolunteerDetail(v, s.now()), nil
}

// ExportApplicationsCSV renders the applications of a job owned by
// commanderID. A job without applications yields domain.ErrNoApplications.
func (s *DirectoryService) ExportApplicationsCSV(ctx context.Context, uow repository.UnitOfWork, commanderID, jobID uint) ([]byte, error) {
	if _, err := ownedJob(ctx, uow, commanderID, jobID); err != nil {
		return nil, err
	}
	apps, err := uow.Applications().ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, domain.ErrNoApplications
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	for _, app := range apps {
		if err := w.Write(csvRow(app)); err != nil {
			return nil, fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRow(app model.JobApplication) []string {
	var name, phone, email, education string
	if v := app.Volunteer; v != nil {
		name = v.FullName
		phone = v.Phone
		email = emailOf(v)
		education = v.Education
	}
	interview := "No interview"
	if app.Interview != nil {
		interview = string(app.Interview.Status)
	}
	return []string{
		strconv.FormatUint(uint64(app.ID), 10),
		name,
		string(app.Status),
		app.ApplicationDate.Format(time.DateOnly),
		phone,
		email,
		education,
		interview,
	}
}
