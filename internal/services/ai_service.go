package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/models"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/prompts"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/providers/llm"
	mongorepo "github.com/ArpanMallick2005/Ai-resume-Analy/internal/repositories/mongo"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
	"github.com/sirupsen/logrus"
)

const upstreamMessage = "AI service request failed"

type AIService interface {
	EnhanceSummary(ctx context.Context, userID, content string) (string, error)
	EnhanceJobDescription(ctx context.Context, userID, content string) (string, error)
	// ExtractResume parses resume text into a new resume document and returns its id.
	ExtractResume(ctx context.Context, in ExtractInput) (string, error)
	AnalyzeResume(ctx context.Context, userID, resumeText string) (*models.AnalysisResult, error)
}

type ExtractInput struct {
	UserID     string
	Title      string
	ResumeText string
	// SourceFile is the archived original, if any.
	SourceFile string
}

type aiService struct {
	provider llm.Provider
	model    string
	resumes  mongorepo.ResumeRepository
	usage    UsageRecorder
	log      logrus.FieldLogger
}

func NewAIService(provider llm.Provider, model string, resumes mongorepo.ResumeRepository, usage UsageRecorder, log logrus.FieldLogger) AIService {
	if usage == nil {
		usage = NopUsage{}
	}
	return &aiService{provider: provider, model: model, resumes: resumes, usage: usage, log: log}
}

func (s *aiService) EnhanceSummary(ctx context.Context, userID, content string) (string, error) {
	const op = "AIService.EnhanceSummary"

	if strings.TrimSpace(content) == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "Missing required fields", nil)
	}
	return s.completeText(ctx, op, userID, prompts.KindEnhanceSummary, content)
}

func (s *aiService) EnhanceJobDescription(ctx context.Context, userID, content string) (string, error) {
	const op = "AIService.EnhanceJobDescription"

	if strings.TrimSpace(content) == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "Missing required fields", nil)
	}
	return s.completeText(ctx, op, userID, prompts.KindEnhanceJobDescription, content)
}

func (s *aiService) ExtractResume(ctx context.Context, in ExtractInput) (string, error) {
	const op = "AIService.ExtractResume"

	if in.UserID == "" {
		return "", utils.E(utils.CodeUnauthorized, op, "unauthorized", nil)
	}
	if strings.TrimSpace(in.ResumeText) == "" || strings.TrimSpace(in.Title) == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "Missing required fields", nil)
	}

	var data models.StructuredResume
	if err := s.completeJSON(ctx, op, in.UserID, prompts.KindExtractResume, in.ResumeText, &data); err != nil {
		return "", err
	}

	doc := models.NewResume(in.UserID, strings.TrimSpace(in.Title), data)
	doc.SourceFile = in.SourceFile

	id, err := s.resumes.Create(ctx, doc)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to save resume", err)
	}
	return id, nil
}

func (s *aiService) AnalyzeResume(ctx context.Context, userID, resumeText string) (*models.AnalysisResult, error) {
	const op = "AIService.AnalyzeResume"

	if strings.TrimSpace(resumeText) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Missing required fields", nil)
	}

	var out models.AnalysisResult
	if err := s.completeJSON(ctx, op, userID, prompts.KindAnalyzeResume, resumeText, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *aiService) completeText(ctx context.Context, op, userID string, kind prompts.Kind, text string) (string, error) {
	raw, _, started, err := s.call(ctx, op, userID, kind, text)
	if err != nil {
		return "", err
	}
	s.record(ctx, userID, kind, models.UsageOK, started, nil)
	return strings.TrimSpace(raw), nil
}

// completeJSON decodes the model answer into dst. Nothing is written by the
// caller when decoding fails, and a memoized copy of the answer is dropped so
// that a retry reaches the model again.
func (s *aiService) completeJSON(ctx context.Context, op, userID string, kind prompts.Kind, text string, dst any) error {
	raw, req, started, err := s.call(ctx, op, userID, kind, text)
	if err != nil {
		return err
	}

	if err := llm.DecodeJSON(raw, dst); err != nil {
		s.log.WithFields(logrus.Fields{
			"op":         op,
			"user_id":    userID,
			"provider":   s.provider.Name(),
			"raw_output": raw,
		}).WithError(err).Error("ai output is not valid json")
		if f, ok := s.provider.(llm.Forgetter); ok {
			f.Forget(ctx, req)
		}
		s.record(ctx, userID, kind, models.UsageFormatError, started, err)
		return err
	}

	s.record(ctx, userID, kind, models.UsageOK, started, nil)
	return nil
}

func (s *aiService) call(ctx context.Context, op, userID string, kind prompts.Kind, text string) (string, llm.Request, time.Time, error) {
	p, err := prompts.Build(kind, text)
	if err != nil {
		return "", llm.Request{}, time.Time{}, err
	}

	// only structured answers are memoized
	req := llm.Request{System: p.System, User: p.User, Model: s.model, NoCache: !kind.Structured()}
	started := time.Now()
	raw, err := s.provider.Complete(ctx, req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"op":       op,
			"user_id":  userID,
			"provider": s.provider.Name(),
			"model":    s.model,
		}).WithError(err).Warn("ai completion failed")
		s.record(ctx, userID, kind, models.UsageUpstreamError, started, err)
		return "", req, started, utils.E(utils.CodeUpstream, op, upstreamMessage, err)
	}
	return raw, req, started, nil
}

func (s *aiService) record(ctx context.Context, userID string, kind prompts.Kind, status models.UsageStatus, started time.Time, cause error) {
	rec := models.UsageRecord{
		UserID:    userID,
		Operation: string(kind),
		Provider:  s.provider.Name(),
		Model:     s.model,
		Status:    status,
		LatencyMS: time.Since(started).Milliseconds(),
	}
	if cause != nil {
		if b, err := json.Marshal(map[string]string{"error": cause.Error()}); err == nil {
			rec.Metadata = b
		}
	}
	s.usage.Record(ctx, rec)
}
