package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"gorm.io/datatypes"
)

// PasswordHasher is satisfied by auth.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// AccountBase holds the fields every registration carries.
type AccountBase struct {
	Role     string `json:"role"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,max=128"`
}

func (b AccountBase) base() AccountBase { return b }

// Registration is implemented by VolunteerRegistration,
// CommanderRegistration and HRRegistration only.
type Registration interface {
	AccountRole() model.Role
	base() AccountBase
	profile(f *AccountFactory) (model.Profile, error)
}

type VolunteerRegistration struct {
	AccountBase
	FullName          string   `json:"full_name" validate:"required,max=100"`
	NationalID        string   `json:"national_id" validate:"required,max=20"`
	DateOfBirth       string   `json:"date_of_birth"`
	Gender            string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Address           string   `json:"address" validate:"max=200"`
	Phone             string   `json:"phone"`
	PrimaryProfession string   `json:"primary_profession" validate:"max=100"`
	Education         string   `json:"education"`
	Experience        string   `json:"experience"`
	Courses           []string `json:"courses"`
	Languages         []string `json:"languages"`
	Interests         []string `json:"interests"`
	AreaOfInterest    string   `json:"area_of_interest" validate:"max=100"`
	ContactReference  string   `json:"contact_reference" validate:"max=100"`
	Summary           string   `json:"summary"`
	JoinDate          string   `json:"join_date"`
}

func (r *VolunteerRegistration) AccountRole() model.Role { return model.RoleVolunteer }

func (r *VolunteerRegistration) profile(f *AccountFactory) (model.Profile, error) {
	phone, err := f.phones.Normalize(r.Phone)
	if err != nil {
		return nil, err
	}

	v := &model.Volunteer{
		FullName:          strings.TrimSpace(r.FullName),
		NationalID:        strings.TrimSpace(r.NationalID),
		Gender:            model.Gender(strings.ToLower(r.Gender)),
		Address:           r.Address,
		Phone:             phone,
		PrimaryProfession: r.PrimaryProfession,
		Education:         r.Education,
		Experience:        r.Experience,
		Courses:           datatypes.JSONSlice[string](r.Courses),
		Languages:         datatypes.JSONSlice[string](r.Languages),
		Interests:         datatypes.JSONSlice[string](r.Interests),
		AreaOfInterest:    r.AreaOfInterest,
		ContactReference:  r.ContactReference,
		Summary:           r.Summary,
		JoinDate:          f.now(),
	}

	if r.DateOfBirth != "" {
		dob, err := parseDate(r.DateOfBirth)
		if err != nil {
			return nil, err
		}
		d := datatypes.Date(dob)
		v.DateOfBirth = &d
	}
	if r.JoinDate != "" {
		joined, err := parseDate(r.JoinDate)
		if err != nil {
			return nil, err
		}
		v.JoinDate = joined
	}
	return v, nil
}

type CommanderRegistration struct {
	AccountBase
	Name       string `json:"name" validate:"required,max=100"`
	Department string `json:"department" validate:"max=100"`
	Rank       string `json:"rank" validate:"max=50"`
	Phone      string `json:"phone"`
}

func (r *CommanderRegistration) AccountRole() model.Role { return model.RoleCommander }

func (r *CommanderRegistration) profile(f *AccountFactory) (model.Profile, error) {
	phone, err := f.phones.Normalize(r.Phone)
	if err != nil {
		return nil, err
	}
	return &model.Commander{
		Name:       strings.TrimSpace(r.Name),
		Department: r.Department,
		Rank:       r.Rank,
		Phone:      phone,
	}, nil
}

type HRRegistration struct {
	AccountBase
	Name       string `json:"name" validate:"required,max=100"`
	Department string `json:"department" validate:"max=100"`
	Phone      string `json:"phone"`
}

func (r *HRRegistration) AccountRole() model.Role { return model.RoleHR }

func (r *HRRegistration) profile(f *AccountFactory) (model.Profile, error) {
	phone, err := f.phones.Normalize(r.Phone)
	if err != nil {
		return nil, err
	}
	return &model.HR{
		Name:       strings.TrimSpace(r.Name),
		Department: r.Department,
		Phone:      phone,
	}, nil
}

// DecodeRegistration reads the role from body and decodes the rest into the
// matching registration type. Fields that do not belong to the role are
// rejected.
func DecodeRegistration(body []byte) (Registration, error) {
	var probe struct {
		Role string `json:"role"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON", domain.ErrInvalidInput)
	}

	role, ok := model.ParseRole(probe.Role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, probe.Role)
	}
	return DecodeRegistrationAs(body, role)
}

// DecodeRegistrationAs decodes body as a registration for role. A role field
// in the body, when present, must agree.
func DecodeRegistrationAs(body []byte, role model.Role) (Registration, error) {
	var reg Registration
	switch role {
	case model.RoleVolunteer:
		reg = &VolunteerRegistration{}
	case model.RoleCommander:
		reg = &CommanderRegistration{}
	case model.RoleHR:
		reg = &HRRegistration{}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(reg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if given := reg.base().Role; given != "" {
		if parsed, ok := model.ParseRole(given); !ok || parsed != role {
			return nil, fmt.Errorf("%w: expected %s, got %q", domain.ErrInvalidRole, role, given)
		}
	}
	return reg, nil
}

// AccountFactory validates registrations and turns them into accounts with
// hashed passwords and normalised contact data.
type AccountFactory struct {
	hasher PasswordHasher
	phones PhoneNormalizer
	now    func() time.Time
}

func NewAccountFactory(hasher PasswordHasher, phones PhoneNormalizer) *AccountFactory {
	return &AccountFactory{
		hasher: hasher,
		phones: phones,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (f *AccountFactory) Build(reg Registration) (*model.Account, error) {
	if reg == nil {
		return nil, domain.ErrInvalidRole
	}
	if err := validateStruct(reg); err != nil {
		return nil, err
	}

	profile, err := reg.profile(f)
	if err != nil {
		return nil, err
	}

	hash, err := f.hasher.Hash(reg.base().Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        model.NormalizeEmail(reg.base().Email),
		PasswordHash: hash,
	}
	return model.NewAccount(user, profile)
}
