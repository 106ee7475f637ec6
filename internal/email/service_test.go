package email

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/anz-davar/giuson/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Mail.Provider = string(ProviderNone)
	cfg.Mail.From = "no-reply@giuson.test"
	cfg.Mail.FromName = "Giuson"
	return cfg
}

func TestNewEmailServiceLoadsTemplates(t *testing.T) {
	s, err := NewEmailService(testConfig(), ProviderNone)
	require.NoError(t, err)

	assert.Contains(t, s.Templates, "interview_scheduled")
	assert.Contains(t, s.Templates, "volunteer_hired")
}

func TestNewEmailServiceRequiresProviderSettings(t *testing.T) {
	_, err := NewEmailService(testConfig(), ProviderSendgrid)
	assert.Error(t, err)

	_, err = NewEmailService(testConfig(), ProviderSMTP)
	assert.Error(t, err)

	_, err = NewEmailService(testConfig(), Provider("carrier-pigeon"))
	assert.Error(t, err)
}

func TestRenderTemplate(t *testing.T) {
	s, err := NewEmailService(testConfig(), ProviderNone)
	require.NoError(t, err)

	data := struct {
		Name          string
		JobTitle      string
		ScheduledDate string
		Schedule      string
		FromName      string
	}{
		Name:          "Dana Levi",
		JobTitle:      "Field Medic",
		ScheduledDate: "2026-11-02",
		Schedule:      "10:00",
		FromName:      "Giuson",
	}

	html, text, err := s.renderTemplate("interview_scheduled", data)
	require.NoError(t, err)

	assert.Contains(t, text, "Hello Dana Levi")
	assert.Contains(t, text, `"Field Medic"`)
	assert.Contains(t, text, "2026-11-02 (10:00)")
	assert.Contains(t, html, "Dana Levi")
	assert.Contains(t, html, "Field Medic")

	_, _, err = s.renderTemplate("password_reset", data)
	assert.Error(t, err)
}

func TestBuildMIMEMessage(t *testing.T) {
	msg := string(buildMIMEMessage(EmailData{
		To:       "dana@example.com",
		From:     "no-reply@giuson.test",
		FromName: "Giuson",
		Subject:  "You have been assigned",
	}, "<p>hi</p>", "hi", "BOUNDARY"))

	assert.Contains(t, msg, "To: dana@example.com\r\n")
	assert.Contains(t, msg, "<no-reply@giuson.test>")
	assert.Contains(t, msg, "Content-Type: multipart/alternative; boundary=BOUNDARY\r\n")
	assert.Contains(t, msg, base64.StdEncoding.EncodeToString([]byte("hi")))
	assert.Contains(t, msg, base64.StdEncoding.EncodeToString([]byte("<p>hi</p>")))
	assert.True(t, strings.HasSuffix(msg, "--BOUNDARY--"))
	assert.Equal(t, 3, strings.Count(msg, "--BOUNDARY"))
}

func TestSendEmailWithoutProvider(t *testing.T) {
	s, err := NewEmailService(testConfig(), ProviderNone)
	require.NoError(t, err)

	data := EmailData{
		To:           "dana@example.com",
		Subject:      "Assigned",
		TemplateName: "volunteer_hired",
		TemplateData: struct {
			Name     string
			JobTitle string
			Unit     string
			FromName string
		}{Name: "Dana", JobTitle: "Driver", FromName: "Giuson"},
	}
	assert.NoError(t, s.SendEmail(context.Background(), data))

	data.To = ""
	assert.Error(t, s.SendEmail(context.Background(), data))

	data.To = "dana@example.com"
	data.TemplateName = "missing"
	assert.Error(t, s.SendEmail(context.Background(), data))
}
