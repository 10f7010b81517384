// Package prompts holds the instruction text sent to the completion provider
// for each AI operation.
package prompts

import (
	"fmt"
	"strings"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
)

type Kind string

const (
	KindEnhanceSummary        Kind = "enhance_summary"
	KindEnhanceJobDescription Kind = "enhance_job_description"
	KindExtractResume         Kind = "extract_resume"
	KindAnalyzeResume         Kind = "analyze_resume"
)

// Structured reports whether the operation expects a JSON answer.
func (k Kind) Structured() bool {
	return k == KindExtractResume || k == KindAnalyzeResume
}

// Prompt is a system/user message pair.
type Prompt struct {
	System string
	User   string
}

const (
	enhanceSummarySystem = "You are an expert in resume writing. Your task is to enhance the professional summary of a resume. " +
		"The summary should be 1-2 sentences also highlighting key skills, experience, and career objectives. " +
		"Make it compelling and ATS-friendly. Only return plain text, no options, no markdown, nothing else."

	enhanceJobDescriptionSystem = "You are an expert in resume writing. Your task is to enhance the job description of a resume. " +
		"The job description should be only 1-2 sentences also highlighting key responsibilities and achievements. " +
		"Use action verbs and quantifiable results where possible. Make it ATS-friendly. " +
		"Only return plain text, no options, no markdown, nothing else."

	extractResumeSystem = "You are an expert AI agent that extracts structured information from resume text."

	analyzeResumeSystem = "You are an expert ATS (Applicant Tracking System) specialist and resume auditor."
)

// ResumeSchema is embedded verbatim in the extraction prompt. It must stay in
// sync with models.StructuredResume.
const ResumeSchema = `{
    "professional_summary": "string",
    "skills": ["string"],
    "personal_info": {
        "full_name": "string",
        "profession": "string",
        "email": "string",
        "phone": "string",
        "location": "string",
        "linkedIn": "string",
        "website": "string"
    },
    "experience": [
        {
            "company": "string",
            "position": "string",
            "start_date": "string",
            "end_date": "string",
            "description": "string",
            "is_current": boolean
        }
    ],
    "projects": [
        {
            "name": "string",
            "type": "string",
            "description": "string"
        }
    ],
    "education": [
        {
            "institution": "string",
            "degree": "string",
            "field": "string",
            "graduation_date": "string",
            "gpa": "string"
        }
    ]
}`

// AnalysisSchema is embedded verbatim in the analysis prompt.
const AnalysisSchema = `{
    "ats_score": number,
    "strengths": [string],
    "weaknesses": [string],
    "suggestions": [string],
    "summary": string
}`

const extractResumeUser = `Extract the following information from this resume text:

%s

Provide the data in valid JSON format with the following structure. Use empty strings or empty arrays if information is missing:

%s
`

const analyzeResumeUser = `Analyze the following resume text for ATS compatibility and overall quality.
Provide an ATS score (0-100), a list of strengths, a list of weaknesses, and actionable suggestions for improvement.

Resume Text:
%s

Provide the analysis in the following JSON format with no additional text:
%s
`

// Build returns the prompt pair for kind with text as the caller content.
func Build(kind Kind, text string) (Prompt, error) {
	const op = "prompts.Build"

	if strings.TrimSpace(text) == "" {
		return Prompt{}, utils.E(utils.CodeInvalidArgument, op, "content is required", nil)
	}

	switch kind {
	case KindEnhanceSummary:
		return Prompt{System: enhanceSummarySystem, User: text}, nil
	case KindEnhanceJobDescription:
		return Prompt{System: enhanceJobDescriptionSystem, User: text}, nil
	case KindExtractResume:
		return Prompt{System: extractResumeSystem, User: fmt.Sprintf(extractResumeUser, text, ResumeSchema)}, nil
	case KindAnalyzeResume:
		return Prompt{System: analyzeResumeSystem, User: fmt.Sprintf(analyzeResumeUser, text, AnalysisSchema)}, nil
	default:
		return Prompt{}, utils.E(utils.CodeInvalidArgument, op, fmt.Sprintf("unknown prompt kind %q", kind), nil)
	}
}
