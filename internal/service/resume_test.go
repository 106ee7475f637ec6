package service_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/mocks"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// wordDocument returns a minimal OOXML word processing package.
func wordDocument(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range []string{"[Content_Types].xml", "word/document.xml"} {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
		require.NoError(t, err)
		_, err = w.Write([]byte("<xml/>"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// legacyWordDocument returns a compound file header whose root entry
// carries the Word 97-2003 class id.
func legacyWordDocument() []byte {
	doc := make([]byte, 1024)
	copy(doc, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	doc[26] = 0x03
	copy(doc[512+80:], []byte{0x06, 0x09, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46})
	return doc
}

func elfBinary() []byte {
	bin := make([]byte, 128)
	copy(bin, []byte{0x7F, 'E', 'L', 'F', 0x02, 0x01, 0x01})
	bin[16] = 0x02
	return bin
}

type resumeFixture struct {
	svc     *service.ResumeService
	uow     *mocks.MockUnitOfWork
	apps    *mocks.MockApplicationRepositoryIface
	resumes *mocks.MockResumeRepositoryIface
	blobs   *mocks.MockBlobStore
}

func newResumeFixture(t *testing.T) *resumeFixture {
	ctrl := gomock.NewController(t)
	f := &resumeFixture{
		uow:     mocks.NewMockUnitOfWork(ctrl),
		apps:    mocks.NewMockApplicationRepositoryIface(ctrl),
		resumes: mocks.NewMockResumeRepositoryIface(ctrl),
		blobs:   mocks.NewMockBlobStore(ctrl),
	}
	f.svc = service.NewResumeService(f.blobs, 1<<20)
	f.uow.EXPECT().Applications().Return(f.apps).AnyTimes()
	f.uow.EXPECT().Resumes().Return(f.resumes).AnyTimes()
	return f
}

func (f *resumeFixture) expectApplication(ctx context.Context) {
	f.apps.EXPECT().FindByVolunteerAndJob(ctx, uint(5), uint(4)).Return(&model.JobApplication{ID: 21, JobID: 4, VolunteerID: 5}, nil)
}

func TestResumeContentDetection(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		filename string
		content  []byte
		wantType string
		wantErr  error
	}{
		{"word document", "cv.docx", wordDocument(t), "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil},
		{"legacy word document", "cv.doc", legacyWordDocument(), "application/msword", nil},
		{"executable named doc", "cv.doc", elfBinary(), "", domain.ErrResumeUnsupported},
		{"plain zip named docx", "cv.docx", append([]byte("PK\x03\x04"), []byte("not an office package at all")...), "", domain.ErrResumeUnsupported},
		{"word document named pdf", "cv.pdf", wordDocument(t), "", domain.ErrResumeUnsupported},
		{"unknown extension", "cv.exe", elfBinary(), "", domain.ErrResumeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newResumeFixture(t)
			f.expectApplication(ctx)
			if tt.wantErr == nil {
				f.resumes.EXPECT().FindByApplicationID(ctx, uint(21)).Return(nil, domain.ErrNotFound)
				f.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), int64(len(tt.content)), tt.wantType).Return("stored", nil)
				f.resumes.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
			}

			resume, _, err := f.svc.Upload(ctx, f.uow, 5, 4, service.ResumeUpload{Filename: tt.filename, Content: bytes.NewReader(tt.content)})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, resume.ContentType)
		})
	}
}

func TestResumeUploadStorageFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("failed put leaves no record", func(t *testing.T) {
		f := newResumeFixture(t)
		f.expectApplication(ctx)
		f.resumes.EXPECT().FindByApplicationID(ctx, uint(21)).Return(nil, domain.ErrNotFound)
		f.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket unavailable"))

		_, _, err := f.svc.Upload(ctx, f.uow, 5, 4, service.ResumeUpload{Filename: "cv.docx", Content: bytes.NewReader(wordDocument(t))})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storing resume")
	})

	t.Run("failed upsert removes the stored file", func(t *testing.T) {
		f := newResumeFixture(t)
		f.expectApplication(ctx)
		f.resumes.EXPECT().FindByApplicationID(ctx, uint(21)).Return(&model.Resume{ApplicationID: 21, FilePath: "old"}, nil)
		f.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
				assert.Regexp(t, `^application_21/.+\.docx$`, key)
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.NotEmpty(t, data)
				return "new", nil
			})
		failure := errors.New("constraint failed")
		f.resumes.EXPECT().Upsert(ctx, gomock.Any()).Return(failure)
		f.blobs.EXPECT().Delete(ctx, "new").Return(nil)

		_, previous, err := f.svc.Upload(ctx, f.uow, 5, 4, service.ResumeUpload{Filename: "cv.docx", Content: bytes.NewReader(wordDocument(t))})
		assert.ErrorIs(t, err, failure)
		assert.Empty(t, previous)
	})
}
