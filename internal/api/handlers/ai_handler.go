package handlers

import (
	"net/http"
	"strings"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/services"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	ai    services.AIService
	files services.ResumeFileService
}

func NewAIHandler(ai services.AIService, files services.ResumeFileService) *AIHandler {
	return &AIHandler{ai: ai, files: files}
}

type EnhanceRequest struct {
	UserContent string `json:"userContent"`
}

type EnhanceResponse struct {
	EnhancedContent string `json:"enhancedContent"`
}

type UploadResumeRequest struct {
	ResumeText string `json:"resumeText"`
	Title      string `json:"title"`
}

type UploadResumeResponse struct {
	ResumeID string `json:"resumeId"`
}

type AnalyzeResumeRequest struct {
	ResumeText string `json:"resumeText"`
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// EnhanceProSum handles POST /api/ai/enhance-pro-sum.
func (h *AIHandler) EnhanceProSum(c *gin.Context) {
	const op = "AIHandler.EnhanceProSum"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req EnhanceRequest
	if !bindJSON(c, op, &req) {
		return
	}
	if blank(req.UserContent) {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, msgMissingFields, nil))
		return
	}

	out, err := h.ai.EnhanceSummary(c.Request.Context(), userID, req.UserContent)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, EnhanceResponse{EnhancedContent: out})
}

// EnhanceJobDesc handles POST /api/ai/enhance-job-desc.
func (h *AIHandler) EnhanceJobDesc(c *gin.Context) {
	const op = "AIHandler.EnhanceJobDesc"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req EnhanceRequest
	if !bindJSON(c, op, &req) {
		return
	}
	if blank(req.UserContent) {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, msgMissingFields, nil))
		return
	}

	out, err := h.ai.EnhanceJobDescription(c.Request.Context(), userID, req.UserContent)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, EnhanceResponse{EnhancedContent: out})
}

// UploadResume handles POST /api/ai/upload-resume.
func (h *AIHandler) UploadResume(c *gin.Context) {
	const op = "AIHandler.UploadResume"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req UploadResumeRequest
	if !bindJSON(c, op, &req) {
		return
	}
	if blank(req.ResumeText) || blank(req.Title) {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, msgMissingFields, nil))
		return
	}

	id, err := h.ai.ExtractResume(c.Request.Context(), services.ExtractInput{
		UserID:     userID,
		Title:      req.Title,
		ResumeText: req.ResumeText,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, UploadResumeResponse{ResumeID: id})
}

// AnalyzeResume handles POST /api/ai/analyze-resume.
func (h *AIHandler) AnalyzeResume(c *gin.Context) {
	const op = "AIHandler.AnalyzeResume"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req AnalyzeResumeRequest
	if !bindJSON(c, op, &req) {
		return
	}
	if blank(req.ResumeText) {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, msgMissingFields, nil))
		return
	}

	out, err := h.ai.AnalyzeResume(c.Request.Context(), userID, req.ResumeText)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// UploadResumeFile handles multipart POST /api/ai/upload-resume-file with
// fields "file" and "title".
func (h *AIHandler) UploadResumeFile(c *gin.Context) {
	const op = "AIHandler.UploadResumeFile"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	title := c.PostForm("title")
	if blank(title) {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, msgMissingFields, nil))
		return
	}
	name, data, ok := readUpload(c, op)
	if !ok {
		return
	}

	f, err := h.files.Read(name, data)
	if err != nil {
		writeError(c, err)
		return
	}
	stored, err := h.files.Archive(c.Request.Context(), userID, f, data)
	if err != nil {
		writeError(c, err)
		return
	}

	id, err := h.ai.ExtractResume(c.Request.Context(), services.ExtractInput{
		UserID:     userID,
		Title:      title,
		ResumeText: f.Text,
		SourceFile: stored,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, UploadResumeResponse{ResumeID: id})
}

// AnalyzeResumeFile handles multipart POST /api/ai/analyze-resume-file.
func (h *AIHandler) AnalyzeResumeFile(c *gin.Context) {
	const op = "AIHandler.AnalyzeResumeFile"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	name, data, ok := readUpload(c, op)
	if !ok {
		return
	}

	f, err := h.files.Read(name, data)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.ai.AnalyzeResume(c.Request.Context(), userID, f.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
