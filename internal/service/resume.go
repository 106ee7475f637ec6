package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
	"github.com/anz-davar/giuson/internal/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
)

// resumeTypes maps accepted extensions to the content type their bytes
// must be detected as.
var resumeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ResumeUpload is one uploaded file as received from the client.
type ResumeUpload struct {
	Filename string
	Content  io.Reader
}

// ResumeService stores resumes for applications.
type ResumeService struct {
	store    storage.BlobStore
	maxBytes int64
	now      func() time.Time
}

func NewResumeService(store storage.BlobStore, maxBytes int64) *ResumeService {
	return &ResumeService{
		store:    store,
		maxBytes: maxBytes,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Upload attaches a resume to the volunteer's application for jobID,
// replacing any earlier one. It returns the stored record and the location
// of the replaced file, which the caller removes once the unit of work is
// committed.
func (s *ResumeService) Upload(ctx context.Context, uow repository.UnitOfWork, volunteerID, jobID uint, upload ResumeUpload) (*model.Resume, string, error) {
	if upload.Content == nil || upload.Filename == "" {
		return nil, "", domain.ErrResumeMissing
	}

	app, err := uow.Applications().FindByVolunteerAndJob(ctx, volunteerID, jobID)
	if err != nil {
		return nil, "", err
	}

	data, err := io.ReadAll(io.LimitReader(upload.Content, s.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("reading resume: %w", err)
	}
	if len(data) == 0 {
		return nil, "", domain.ErrResumeMissing
	}
	if int64(len(data)) > s.maxBytes {
		return nil, "", fmt.Errorf("%w: limit is %d bytes", domain.ErrResumeTooLarge, s.maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	contentType, err := detectResumeType(ext, data)
	if err != nil {
		return nil, "", err
	}

	pages := 0
	if ext == ".pdf" {
		if pages, err = pageCount(data); err != nil {
			return nil, "", err
		}
	}

	var previous string
	existing, err := uow.Resumes().FindByApplicationID(ctx, app.ID)
	switch {
	case err == nil:
		previous = existing.FilePath
	case !errors.Is(err, domain.ErrNotFound):
		return nil, "", err
	}

	key := fmt.Sprintf("application_%d/%s%s", app.ID, uuid.NewString(), ext)
	location, err := s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return nil, "", fmt.Errorf("storing resume: %w", err)
	}

	resume := &model.Resume{
		ApplicationID: app.ID,
		FilePath:      location,
		OriginalName:  filepath.Base(upload.Filename),
		ContentType:   contentType,
		Size:          int64(len(data)),
		PageCount:     pages,
		UploadDate:    s.now(),
	}
	if err := uow.Resumes().Upsert(ctx, resume); err != nil {
		s.Discard(ctx, location)
		return nil, "", err
	}

	slog.InfoContext(ctx, "Resume stored",
		"applicationID", app.ID,
		"size", resume.Size,
		"pages", pages,
		"replaced", previous != "",
	)
	return resume, previous, nil
}

// Discard removes a stored file, logging failures.
func (s *ResumeService) Discard(ctx context.Context, location string) {
	if location == "" {
		return
	}
	if err := s.store.Delete(ctx, location); err != nil {
		slog.WarnContext(ctx, "Failed to delete resume file", "location", location, "error", err)
	}
}

func detectResumeType(ext string, data []byte) (string, error) {
	contentType, ok := resumeTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrResumeUnsupported, ext)
	}
	detected := mimetype.Detect(data)
	if !detected.Is(contentType) {
		return "", fmt.Errorf("%w: %s content in a %s file", domain.ErrResumeUnsupported, detected.String(), ext)
	}
	return contentType, nil
}

// pageCount parses data as a PDF. The parser panics on some malformed
// files, so those are reported as unsupported too.
func pageCount(data []byte) (pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: unreadable pdf", domain.ErrResumeUnsupported)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: unreadable pdf: %v", domain.ErrResumeUnsupported, err)
	}
	return r.NumPage(), nil
}
