package models

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ResumeFile points at an already-uploaded document on disk.
type ResumeFile struct {
	OriginalName string `json:"original_name"`
	Path         string `json:"path"`
}

type UploadedFile struct {
	OriginalName string `json:"original_name"`
	StoredName   string `json:"stored_name"`
	Path         string `json:"path"`
}

type UploadResponse struct {
	Status  Status         `json:"status"`
	Message string         `json:"message"`
	Files   []UploadedFile `json:"files"`
}

type JobDescriptionRequest struct {
	JobDescription string `json:"job_description"`
}

type JobDescriptionResponse struct {
	Status         Status `json:"status"`
	Message        string `json:"message"`
	JDID           string `json:"jd_id"`
	JobDescription string `json:"job_description"`
}

type AnalyzeRequest struct {
	JobDescription string       `json:"job_description"`
	ResumeFiles    []ResumeFile `json:"resume_files"`
}

// AnalysisResult is the per-resume outcome. On error only Resume, Status and
// Message are populated; on success Message stays empty and the scoring
// fields are filled in. The skill lists carry no omitempty: success entries
// always emit key_strengths/missing_skills, as [] when empty (the
// degenerate-JD case), so clients can key on their presence.
type AnalysisResult struct {
	Resume        string   `json:"resume"`
	Status        Status   `json:"status"`
	Message       string   `json:"message,omitempty"`
	MatchScore    *float64 `json:"match_score,omitempty"`
	KeyStrengths  []string `json:"key_strengths"`
	MissingSkills []string `json:"missing_skills"`
	Feedback      string   `json:"feedback,omitempty"`
}

// BatchResult aggregates one analyze invocation. Results preserves the input
// order of the resumes, one entry each, whether they succeeded or not.
type BatchResult struct {
	Status     Status           `json:"status"`
	Message    string           `json:"message"`
	Results    []AnalysisResult `json:"results"`
	ValidCount int              `json:"valid_count"`
}

type ErrorResponse struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}
