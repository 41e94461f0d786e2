// Package ai analyzes freelancer resumes against job requirements using a
// text-completion model.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Analyzer turns resume text plus job requirements into improvement
// recommendations.
type Analyzer struct {
	gen Generator
	log *zap.Logger
}

func NewAnalyzer(gen Generator, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{gen: gen, log: log}
}

// AnalyzeResume asks the model for key skills, missing skills, and
// suggestions relative to the job requirements.
func (a *Analyzer) AnalyzeResume(ctx context.Context, resumeText, jobRequirements string) (string, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return "", errors.New("resume text must not be empty")
	}
	jobRequirements = strings.TrimSpace(jobRequirements)
	if jobRequirements == "" {
		return "", errors.New("job requirements must not be empty")
	}

	prompt := buildPrompt(resumeText, jobRequirements)

	a.log.Debug("requesting resume analysis",
		zap.String("model", a.gen.Model()),
		zap.Int("resume_chars", len(resumeText)),
	)

	analysis, err := a.gen.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("analyze resume: %w", err)
	}

	return analysis, nil
}

func buildPrompt(resumeText, jobRequirements string) string {
	return fmt.Sprintf(`Analyze the following resume and provide recommendations to better match the job requirements:
- Key skills in the resume
- Missing skills compared to the job requirements
- Suggestions for improvement

Resume:
%s

Job Requirements:
%s`, resumeText, jobRequirements)
}
