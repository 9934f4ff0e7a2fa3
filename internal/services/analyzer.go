package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"path/filepath"

	"github.com/dineshhh-06/ai-powered-resume-screening/internal/models"
)

// ErrJobDescriptionEmpty means the job description normalized to nothing.
// The whole batch fails fast; no resumes are processed.
var ErrJobDescriptionEmpty = errors.New("could not process the job description")

// Stage messages recorded on per-resume error entries.
const (
	msgExtractionFailed = "Could not extract text from PDF"
	msgPreprocessFailed = "Could not preprocess resume text"
	msgScoringFailed    = "Could not score resume against job description"
)

type AnalyzerService interface {
	AnalyzeBatch(ctx context.Context, jobDescription string, resumes []models.ResumeFile) (*models.BatchResult, error)
}

type analyzerService struct {
	pdfParser  PDFParserService
	nlp        *NLPContext
	similarity SimilarityService
}

func NewAnalyzerService(
	pdfParser PDFParserService,
	nlp *NLPContext,
	similarity SimilarityService,
) AnalyzerService {
	return &analyzerService{
		pdfParser:  pdfParser,
		nlp:        nlp,
		similarity: similarity,
	}
}

// AnalyzeBatch runs the pipeline for every resume in input order. The job
// description is extracted and normalized once and shared read-only across
// the loop. One resume's failure becomes an error entry and never aborts
// the rest; only an empty job description fails the batch up front. The
// batch as a whole succeeds when at least one resume made it through.
func (a *analyzerService) AnalyzeBatch(ctx context.Context, jobDescription string, resumes []models.ResumeFile) (*models.BatchResult, error) {
	jdProcessed := a.nlp.Preprocess(jobDescription)
	if jdProcessed == "" {
		return nil, ErrJobDescriptionEmpty
	}

	jdSkills := a.nlp.ExtractSkills(jdProcessed)

	results := make([]models.AnalysisResult, 0, len(resumes))
	validCount := 0

	for _, resume := range resumes {
		result := a.analyzeResume(ctx, jdProcessed, jdSkills, resume)
		results = append(results, result)
		if result.Status == models.StatusSuccess {
			validCount++
		}
	}

	batch := &models.BatchResult{
		Results:    results,
		ValidCount: validCount,
	}

	if validCount == 0 {
		batch.Status = models.StatusError
		batch.Message = "No valid resumes could be processed"
		return batch, nil
	}

	batch.Status = models.StatusSuccess
	batch.Message = fmt.Sprintf("Successfully analyzed %d resume(s)", validCount)
	return batch, nil
}

func (a *analyzerService) analyzeResume(ctx context.Context, jdProcessed string, jdSkills SkillSet, resume models.ResumeFile) models.AnalysisResult {
	name := resume.OriginalName
	if name == "" {
		// Identify by file name only; server-side upload paths must not
		// leak into results.
		name = filepath.Base(resume.Path)
	}

	rawText, err := a.pdfParser.ExtractText(resume.Path)
	if err != nil {
		log.Printf("⚠️  Extraction failed for %s: %v", name, err)
		return errorResult(name, msgExtractionFailed)
	}

	processed := a.nlp.Preprocess(rawText)
	if processed == "" {
		log.Printf("⚠️  Preprocessing produced no tokens for %s", name)
		return errorResult(name, msgPreprocessFailed)
	}

	score, err := a.similarity.Score(ctx, jdProcessed, processed)
	if err != nil {
		log.Printf("⚠️  Scoring failed for %s: %v", name, err)
		return errorResult(name, msgScoringFailed)
	}

	resumeSkills := a.nlp.ExtractSkills(processed)
	strengths, missing, feedback := AnalyzeSkillGap(jdSkills, resumeSkills)

	matchScore := math.Round(score*10) / 10
	return models.AnalysisResult{
		Resume:        name,
		Status:        models.StatusSuccess,
		MatchScore:    &matchScore,
		KeyStrengths:  strengths,
		MissingSkills: missing,
		Feedback:      feedback,
	}
}

func errorResult(name, message string) models.AnalysisResult {
	return models.AnalysisResult{
		Resume:        name,
		Status:        models.StatusError,
		Message:       message,
		KeyStrengths:  []string{},
		MissingSkills: []string{},
	}
}
