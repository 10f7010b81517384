package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/extract"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/storage"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
	"github.com/google/uuid"
)

// ResumeFile is an uploaded resume turned into text.
type ResumeFile struct {
	Name        string
	ContentType string
	Text        string
}

type ResumeFileService interface {
	Read(fileName string, data []byte) (*ResumeFile, error)
	// Archive stores the original file and returns its path. It returns ""
	// when archiving is disabled.
	Archive(ctx context.Context, userID string, f *ResumeFile, data []byte) (string, error)
}

type resumeFileService struct {
	uploader storage.Uploader
}

// NewResumeFileService accepts a nil uploader, which disables archiving.
func NewResumeFileService(uploader storage.Uploader) ResumeFileService {
	return &resumeFileService{uploader: uploader}
}

func (s *resumeFileService) Read(fileName string, data []byte) (*ResumeFile, error) {
	const op = "ResumeFileService.Read"

	if len(data) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "file is empty", nil)
	}
	if len(data) > extract.MaxFileSize {
		return nil, utils.E(utils.CodeInvalidArgument, op, "file is larger than 10MB", nil)
	}

	ct := extract.DetectType(fileName, data)
	text, err := extract.Text(ct, data)
	switch {
	case errors.Is(err, extract.ErrUnsupported):
		return nil, utils.E(utils.CodeInvalidArgument, op, "only .pdf, .docx and .txt files are supported", err)
	case errors.Is(err, extract.ErrNoText):
		return nil, utils.E(utils.CodeInvalidArgument, op, "no text could be read from the file", err)
	case err != nil:
		return nil, utils.E(utils.CodeInvalidArgument, op, "file could not be read", err)
	}

	return &ResumeFile{Name: path.Base(fileName), ContentType: ct, Text: text}, nil
}

func (s *resumeFileService) Archive(ctx context.Context, userID string, f *ResumeFile, data []byte) (string, error) {
	const op = "ResumeFileService.Archive"

	if s.uploader == nil {
		return "", nil
	}
	if userID == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	object := fmt.Sprintf("resumes/%s/%s%s", userID, uuid.NewString(), strings.ToLower(path.Ext(f.Name)))
	stored, err := s.uploader.Upload(ctx, object, f.ContentType, bytes.NewReader(data))
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to archive file", err)
	}
	return stored, nil
}
