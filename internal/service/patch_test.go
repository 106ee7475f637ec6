package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func fields(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	return m
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "vacantpositions", normalizeKey("vacant_positions"))
	assert.Equal(t, "vacantpositions", normalizeKey("vacantPositions"))
	assert.Equal(t, "openbase", normalizeKey("Open_Base"))
}

func TestJobPatchTable(t *testing.T) {
	table := jobPatchTable()

	t.Run("accepts both key styles", func(t *testing.T) {
		updates, err := table.apply(fields(t, `{
			"name": "Driver",
			"vacant_positions": 3,
			"openBase": false,
			"hourlySalary": 42.5,
			"status": "Closed"
		}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"title":            "Driver",
			"vacant_positions": 3,
			"is_open_base":     false,
			"hourly_salary":    42.5,
			"status":           model.JobStatusClosed,
		}, updates)
	})

	tests := []struct {
		name string
		body string
		want error
	}{
		{"empty", `{}`, domain.ErrInvalidInput},
		{"unknown key", `{"salary": 10}`, domain.ErrUnknownField},
		{"same column twice", `{"name": "A", "title": "B"}`, domain.ErrInvalidInput},
		{"negative positions", `{"positions": -1}`, domain.ErrInvalidInput},
		{"blank title", `{"title": "  "}`, domain.ErrInvalidInput},
		{"title too long", `{"title": "` + longString(101) + `"}`, domain.ErrInvalidInput},
		{"unknown status", `{"status": "archived"}`, domain.ErrInvalidStatus},
		{"wrong type", `{"openBase": "yes"}`, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.apply(fields(t, tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func longString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}

func TestVolunteerPatchTable(t *testing.T) {
	phones := NewPhoneNormalizer("IL")

	t.Run("decodes profile fields", func(t *testing.T) {
		updates, err := volunteerPatchTable(phones).apply(fields(t, `{
			"fullName": "Dana Levi",
			"phone": "050-123-4567",
			"dateOfBirth": "1995-Apr-12",
			"courses": "first aid, driving ,",
			"languages": ["he", "en"],
			"personalSummary": null,
			"gender": "Female"
		}`))
		require.NoError(t, err)

		assert.Equal(t, "Dana Levi", updates["full_name"])
		assert.Equal(t, "+972501234567", updates["phone"])
		assert.Equal(t, datatypes.Date(time.Date(1995, time.April, 12, 0, 0, 0, 0, time.UTC)), updates["date_of_birth"])
		assert.Equal(t, datatypes.JSONSlice[string]{"first aid", "driving"}, updates["courses"])
		assert.Equal(t, datatypes.JSONSlice[string]{"he", "en"}, updates["languages"])
		assert.Equal(t, "", updates["summary"])
		assert.Equal(t, model.GenderFemale, updates["gender"])
	})

	t.Run("national id is reserved for HR", func(t *testing.T) {
		body := `{"national_id": "987654321"}`

		_, err := volunteerPatchTable(phones).apply(fields(t, body))
		assert.ErrorIs(t, err, domain.ErrUnknownField)

		updates, err := hrVolunteerPatchTable(phones).apply(fields(t, body))
		require.NoError(t, err)
		assert.Equal(t, "987654321", updates["national_id"])
	})

	t.Run("rejects bad values", func(t *testing.T) {
		_, err := volunteerPatchTable(phones).apply(fields(t, `{"phone": "12"}`))
		assert.ErrorIs(t, err, domain.ErrInvalidPhone)

		_, err = volunteerPatchTable(phones).apply(fields(t, `{"dateOfBirth": "someday"}`))
		assert.ErrorIs(t, err, domain.ErrInvalidDate)

		_, err = volunteerPatchTable(phones).apply(fields(t, `{"gender": "robot"}`))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = volunteerPatchTable(phones).apply(fields(t, `{"summary": "a", "personal_summary": "b"}`))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestParseDate(t *testing.T) {
	want := time.Date(2000, time.November, 11, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2000-11-11", "2000-Nov-11", "2000-11-11T00:00:00", "2000-11-11T00:00:00Z", "2000-11-11 00:00:00", " 2000-11-11 "} {
		t.Run(s, func(t *testing.T) {
			got, err := parseDate(s)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}

	_, err := parseDate("11/11/2000")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestPhoneNormalizer(t *testing.T) {
	p := NewPhoneNormalizer("")

	got, err := p.Normalize("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = p.Normalize("+1 650-253-0000")
	require.NoError(t, err)
	assert.Equal(t, "+16502530000", got)

	got, err = p.Normalize("052 555 1234")
	require.NoError(t, err)
	assert.Equal(t, "+972525551234", got)

	_, err = p.Normalize("not a phone")
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)
}

func TestDecodeRegistration(t *testing.T) {
	t.Run("picks the type from the role", func(t *testing.T) {
		reg, err := DecodeRegistration([]byte(`{"role":"Commander","email":"c@example.com","password":"longenough","name":"Avi","rank":"Major"}`))
		require.NoError(t, err)
		c, ok := reg.(*CommanderRegistration)
		require.True(t, ok)
		assert.Equal(t, "Major", c.Rank)
		assert.Equal(t, model.RoleCommander, reg.AccountRole())
	})

	t.Run("rejects fields of another role", func(t *testing.T) {
		_, err := DecodeRegistration([]byte(`{"role":"hr","email":"h@example.com","password":"longenough","name":"Noa","national_id":"1"}`))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := DecodeRegistration([]byte(`{"role":"admin","email":"a@example.com","password":"longenough"}`))
		assert.ErrorIs(t, err, domain.ErrInvalidRole)

		_, err = DecodeRegistration([]byte(`{"email":"a@example.com"}`))
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := DecodeRegistration([]byte(`{"role":`))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("a forced role must agree with the body", func(t *testing.T) {
		_, err := DecodeRegistrationAs([]byte(`{"role":"hr","email":"v@example.com","password":"longenough","full_name":"V","national_id":"1"}`), model.RoleVolunteer)
		assert.ErrorIs(t, err, domain.ErrInvalidRole)

		reg, err := DecodeRegistrationAs([]byte(`{"email":"v@example.com","password":"longenough","full_name":"V","national_id":"1"}`), model.RoleVolunteer)
		require.NoError(t, err)
		assert.Equal(t, model.RoleVolunteer, reg.AccountRole())
	})
}
