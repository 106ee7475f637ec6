package service

import (
	"strconv"
	"time"

	"github.com/anz-davar/giuson/internal/model"
)

// JobSummary is the commander's view of one of their jobs.
type JobSummary struct {
	ID                uint                `json:"id"`
	JobName           string              `json:"jobName"`
	JobCategory       string              `json:"jobCategory"`
	Unit              string              `json:"unit"`
	Address           string              `json:"address"`
	Positions         int                 `json:"positions"`
	OpenBase          bool                `json:"openBase"`
	ClosedBase        bool                `json:"closedBase"`
	JobDescription    string              `json:"jobDescription"`
	AdditionalInfo    string              `json:"additionalInfo"`
	CommonQuestions   string              `json:"commonQuestions"`
	CommonAnswers     string              `json:"commonAnswers"`
	Education         string              `json:"education"`
	TechSkills        string              `json:"techSkills"`
	WorkExperience    string              `json:"workExperience"`
	PassedCourses     string              `json:"passedCourses"`
	Questions         []model.JobQuestion `json:"questions"`
	CandidateCount    int64               `json:"candidateCount"`
	Status            model.JobStatus     `json:"status"`
	Department        string              `json:"department"`
	CommanderID       uint                `json:"commanderId"`
	ApplicationsCount int64               `json:"applications_count"`
}

func newJobSummary(job *model.Job, applications int64) JobSummary {
	s := JobSummary{
		ID:                job.ID,
		JobName:           job.Title,
		JobCategory:       job.Category,
		Unit:              job.Unit,
		Address:           job.Address,
		Positions:         job.VacantPositions,
		OpenBase:          job.IsOpenBase,
		ClosedBase:        job.ClosedBase(),
		JobDescription:    job.Description,
		AdditionalInfo:    job.AdditionalInfo,
		CommonQuestions:   job.CommonQuestions,
		CommonAnswers:     job.CommonAnswers,
		Education:         job.Education,
		TechSkills:        job.TechSkills,
		WorkExperience:    job.Experience,
		PassedCourses:     job.PassedCourses,
		Questions:         job.Questions,
		CandidateCount:    applications,
		Status:            job.Status,
		CommanderID:       job.CommanderID,
		ApplicationsCount: applications,
	}
	if s.Questions == nil {
		s.Questions = []model.JobQuestion{}
	}
	if job.Commander != nil {
		s.Department = job.Commander.Department
	}
	return s
}

// OpenJob is a job as listed to volunteers.
type OpenJob struct {
	ID              uint                `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	VacantPositions int                 `json:"vacant_positions"`
	Category        string              `json:"category"`
	Unit            string              `json:"unit"`
	Address         string              `json:"address"`
	IsOpenBase      bool                `json:"is_open_base"`
	Questions       []model.JobQuestion `json:"questions"`
}

// Applicant is one application on a commander's job.
type Applicant struct {
	ApplicationID   uint                    `json:"applicationId"`
	CandidateUserID uint                    `json:"candidateUserId"`
	VolunteerID     uint                    `json:"volunteerId"`
	Name            string                  `json:"name"`
	Age             *int                    `json:"age"`
	Status          model.ApplicationStatus `json:"status"`
	ApplicationDate time.Time               `json:"applicationDate"`
}

// VolunteerView is the commander's view of a volunteer profile.
type VolunteerView struct {
	ID                uint                               `json:"id"`
	FullName          string                             `json:"fullName"`
	IDNumber          string                             `json:"idNumber"`
	DateOfBirth       *string                            `json:"dateOfBirth"`
	Age               *int                               `json:"age"`
	Gender            model.Gender                       `json:"gender"`
	Phone             string                             `json:"phone"`
	Email             string                             `json:"email"`
	Address           string                             `json:"address"`
	PrimaryProfession string                             `json:"primaryProfession"`
	Experience        string                             `json:"experience"`
	Education         string                             `json:"education"`
	Courses           []string                           `json:"courses"`
	Languages         []string                           `json:"languages"`
	Interests         []string                           `json:"interests"`
	AreaOfInterest    string                             `json:"areaOfInterest"`
	PersonalSummary   string                             `json:"personalSummary"`
	JobStatuses       map[string]model.ApplicationStatus `json:"jobStatuses"`
}

// VolunteerSummary is a row of the HR volunteer list.
type VolunteerSummary struct {
	ID                uint   `json:"id"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Education         string `json:"education"`
	PrimaryProfession string `json:"primary_profession"`
}

// VolunteerDetail is the full profile as HR and the volunteer see it.
type VolunteerDetail struct {
	VolunteerSummary
	UserID           uint         `json:"user_id"`
	NationalID       string       `json:"national_id"`
	DateOfBirth      *string      `json:"date_of_birth"`
	Age              *int         `json:"age"`
	Gender           model.Gender `json:"gender"`
	Address          string       `json:"address"`
	Experience       string       `json:"experience"`
	Courses          []string     `json:"courses"`
	Languages        []string     `json:"languages"`
	Interests        []string     `json:"interests"`
	AreaOfInterest   string       `json:"area_of_interest"`
	ContactReference string       `json:"contact_reference"`
	Summary          string       `json:"summary"`
	JoinDate         time.Time    `json:"join_date"`
}

// HRJob is a row of the HR job list.
type HRJob struct {
	ID                uint            `json:"id"`
	Title             string          `json:"title"`
	CommanderName     string          `json:"commander_name"`
	VacantPositions   int             `json:"vacant_positions"`
	Status            model.JobStatus `json:"status"`
	ApplicationsCount int64           `json:"applications_count"`
}

// VolunteerApplication is an application as listed for one volunteer.
type VolunteerApplication struct {
	ID              uint                    `json:"id"`
	JobID           uint                    `json:"job_id"`
	JobTitle        string                  `json:"job_title"`
	Status          model.ApplicationStatus `json:"status"`
	ApplicationDate time.Time               `json:"application_date"`
}

// JobApplication is an application as listed for one job.
type JobApplication struct {
	ID              uint                    `json:"id"`
	VolunteerID     uint                    `json:"volunteer_id"`
	VolunteerName   string                  `json:"volunteer_name"`
	Status          model.ApplicationStatus `json:"status"`
	ApplicationDate time.Time               `json:"application_date"`
}

func formatDate(v *model.Volunteer) *string {
	if v.DateOfBirth == nil {
		return nil
	}
	s := time.Time(*v.DateOfBirth).Format(time.DateOnly)
	return &s
}

func ageOf(v *model.Volunteer, now time.Time) *int {
	age, ok := v.Age(now)
	if !ok {
		return nil
	}
	return &age
}

func emailOf(v *model.Volunteer) string {
	if v.User == nil {
		return ""
	}
	return v.User.Email
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func newVolunteerSummary(v *model.Volunteer) VolunteerSummary {
	return VolunteerSummary{
		ID:                v.ID,
		FullName:          v.FullName,
		Email:             emailOf(v),
		Phone:             v.Phone,
		Education:         v.Education,
		PrimaryProfession: v.PrimaryProfession,
	}
}

func newVolunteerDetail(v *model.Volunteer, now time.Time) *VolunteerDetail {
	return &VolunteerDetail{
		VolunteerSummary: newVolunteerSummary(v),
		UserID:           v.UserID,
		NationalID:       v.NationalID,
		DateOfBirth:      formatDate(v),
		Age:              ageOf(v, now),
		Gender:           v.Gender,
		Address:          v.Address,
		Experience:       v.Experience,
		Courses:          orEmpty(v.Courses),
		Languages:        orEmpty(v.Languages),
		Interests:        orEmpty(v.Interests),
		AreaOfInterest:   v.AreaOfInterest,
		ContactReference: v.ContactReference,
		Summary:          v.Summary,
		JoinDate:         v.JoinDate,
	}
}

func newVolunteerView(v *model.Volunteer, apps []model.JobApplication, now time.Time) *VolunteerView {
	statuses := make(map[string]model.ApplicationStatus, len(apps))
	for _, app := range apps {
		statuses[strconv.FormatUint(uint64(app.JobID), 10)] = app.Status
	}
	return &VolunteerView{
		ID:                v.ID,
		FullName:          v.FullName,
		IDNumber:          v.NationalID,
		DateOfBirth:       formatDate(v),
		Age:               ageOf(v, now),
		Gender:            v.Gender,
		Phone:             v.Phone,
		Email:             emailOf(v),
		Address:           v.Address,
		PrimaryProfession: v.PrimaryProfession,
		Experience:        v.Experience,
		Education:         v.Education,
		Courses:           orEmpty(v.Courses),
		Languages:         orEmpty(v.Languages),
		Interests:         orEmpty(v.Interests),
		AreaOfInterest:    v.AreaOfInterest,
		PersonalSummary:   v.Summary,
		JobStatuses:       statuses,
	}
}
