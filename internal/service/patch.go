package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"gorm.io/datatypes"
)

// fieldDecoder turns one raw JSON value into the column value to store.
type fieldDecoder func(raw json.RawMessage) (any, error)

type patchField struct {
	column string
	decode fieldDecoder
}

// patchTable maps normalised request keys to columns. Keys are matched
// case-insensitively with underscores ignored, so "vacant_positions" and
// "vacantPositions" name the same field.
type patchTable map[string]patchField

func normalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", ""))
}

// apply decodes input into column updates. Unknown keys and two keys naming
// the same column are rejected.
func (t patchTable) apply(input map[string]json.RawMessage) (map[string]any, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}

	updates := make(map[string]any, len(input))
	for key, raw := range input {
		field, ok := t[normalizeKey(key)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownField, key)
		}
		if _, dup := updates[field.column]; dup {
			return nil, fmt.Errorf("%w: %s given twice", domain.ErrInvalidInput, field.column)
		}
		value, err := field.decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		updates[field.column] = value
	}
	return updates, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func invalid(raw json.RawMessage, want string) error {
	return fmt.Errorf("%w: expected %s, got %s", domain.ErrInvalidInput, want, raw)
}

// text accepts a string up to max runes, or any length when max is 0.
// JSON null clears the field.
func text(max int) fieldDecoder {
	return func(raw json.RawMessage) (any, error) {
		if isNull(raw) {
			return "", nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, invalid(raw, "string")
		}
		if max > 0 && len([]rune(s)) > max {
			return nil, fmt.Errorf("%w: longer than %d characters", domain.ErrInvalidInput, max)
		}
		return s, nil
	}
}

// requiredText is text that may not be blank or null.
func requiredText(max int) fieldDecoder {
	decode := text(max)
	return func(raw json.RawMessage) (any, error) {
		v, err := decode(raw)
		if err != nil {
			return nil, err
		}
		s := strings.TrimSpace(v.(string))
		if s == "" {
			return nil, fmt.Errorf("%w: must not be empty", domain.ErrInvalidInput)
		}
		return s, nil
	}
}

func nonNegativeInt(raw json.RawMessage) (any, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, invalid(raw, "integer")
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: must not be negative", domain.ErrInvalidInput)
	}
	return n, nil
}

func boolean(raw json.RawMessage) (any, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, invalid(raw, "boolean")
	}
	return b, nil
}

// optionalFloat stores NULL for JSON null.
func optionalFloat(raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return nil, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, invalid(raw, "number")
	}
	if f < 0 {
		return nil, fmt.Errorf("%w: must not be negative", domain.ErrInvalidInput)
	}
	return f, nil
}

func jobStatus(raw json.RawMessage) (any, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, raw)
	}
	return model.ParseJobStatus(s)
}

func gender(raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, invalid(raw, "string")
	}
	g := model.Gender(strings.ToLower(strings.TrimSpace(s)))
	switch g {
	case "", model.GenderMale, model.GenderFemale, model.GenderOther:
		return g, nil
	}
	return nil, fmt.Errorf("%w: unknown gender %q", domain.ErrInvalidInput, s)
}

// date accepts the layouts of parseDate. JSON null clears the field.
func date(raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, invalid(raw, "date string")
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return datatypes.Date(t), nil
}

// stringList accepts a JSON array of strings or a single comma separated
// string.
func stringList(raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return datatypes.JSONSlice[string]{}, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return datatypes.JSONSlice[string](list), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, invalid(raw, "list of strings")
	}
	out := datatypes.JSONSlice[string]{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out, nil
}

func phone(n PhoneNormalizer) fieldDecoder {
	return func(raw json.RawMessage) (any, error) {
		if isNull(raw) {
			return "", nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, invalid(raw, "string")
		}
		return n.Normalize(s)
	}
}

func jobPatchTable() patchTable {
	return patchTable{
		"name":                 {"title", requiredText(100)},
		"title":                {"title", requiredText(100)},
		"jobname":              {"title", requiredText(100)},
		"description":          {"description", text(0)},
		"jobdescription":       {"description", text(0)},
		"positions":            {"vacant_positions", nonNegativeInt},
		"vacantpositions":      {"vacant_positions", nonNegativeInt},
		"category":             {"category", text(50)},
		"jobcategory":          {"category", text(50)},
		"unit":                 {"unit", text(100)},
		"address":              {"address", text(200)},
		"openbase":             {"is_open_base", boolean},
		"additionalinfo":       {"additional_info", text(0)},
		"questions":            {"common_questions", text(0)},
		"commonquestions":      {"common_questions", text(0)},
		"answers":              {"common_answers", text(0)},
		"commonanswers":        {"common_answers", text(0)},
		"workexperience":       {"experience", text(0)},
		"education":            {"education", text(0)},
		"passedcourses":        {"passed_courses", text(0)},
		"techskills":           {"tech_skills", text(0)},
		"requiredcertificates": {"required_certificates", text(0)},
		"requiredlanguages":    {"required_languages", text(0)},
		"hourlysalary":         {"hourly_salary", optionalFloat},
		"weeklysalarycap":      {"weekly_salary_cap", optionalFloat},
		"status":               {"status", jobStatus},
	}
}

// volunteerPatchTable lists the fields a volunteer may change on their own
// profile.
func volunteerPatchTable(phones PhoneNormalizer) patchTable {
	return patchTable{
		"fullname":          {"full_name", requiredText(100)},
		"address":           {"address", text(200)},
		"phone":             {"phone", phone(phones)},
		"primaryprofession": {"primary_profession", text(100)},
		"education":         {"education", text(0)},
		"experience":        {"experience", text(0)},
		"areaofinterest":    {"area_of_interest", text(100)},
		"contactreference":  {"contact_reference", text(100)},
		"summary":           {"summary", text(0)},
		"personalsummary":   {"summary", text(0)},
		"gender":            {"gender", gender},
		"dateofbirth":       {"date_of_birth", date},
		"courses":           {"courses", stringList},
		"languages":         {"languages", stringList},
		"interests":         {"interests", stringList},
	}
}

// hrVolunteerPatchTable extends the self-service fields with the national id.
func hrVolunteerPatchTable(phones PhoneNormalizer) patchTable {
	t := volunteerPatchTable(phones)
	t["nationalid"] = patchField{"national_id", requiredText(20)}
	return t
}
