package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string {
	return "stub-model"
}

func TestAnalyzeResume(t *testing.T) {
	stub := &stubGenerator{response: "Add Docker to your skills section."}
	analyzer := NewAnalyzer(stub, nil)

	analysis, err := analyzer.AnalyzeResume(context.Background(), "5 years of Go and SQL.", "Go, Docker, Kubernetes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis != "Add Docker to your skills section." {
		t.Fatalf("unexpected analysis: %s", analysis)
	}

	if !strings.Contains(stub.lastPrompt, "5 years of Go and SQL.") {
		t.Fatalf("prompt missing resume text: %s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "Go, Docker, Kubernetes") {
		t.Fatalf("prompt missing job requirements: %s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "Missing skills") {
		t.Fatalf("prompt missing instructions: %s", stub.lastPrompt)
	}
}

func TestAnalyzeResumeEmptyInputs(t *testing.T) {
	analyzer := NewAnalyzer(&stubGenerator{response: "x"}, nil)

	if _, err := analyzer.AnalyzeResume(context.Background(), "  ", "Go"); err == nil {
		t.Fatalf("expected error for empty resume")
	}
	if _, err := analyzer.AnalyzeResume(context.Background(), "resume", ""); err == nil {
		t.Fatalf("expected error for empty requirements")
	}
}

func TestAnalyzeResumePropagatesGeneratorError(t *testing.T) {
	wantErr := errors.New("backend down")
	analyzer := NewAnalyzer(&stubGenerator{err: wantErr}, nil)

	_, err := analyzer.AnalyzeResume(context.Background(), "resume", "Go")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped generator error, got %v", err)
	}
}

func TestExtractResumeTextPlain(t *testing.T) {
	text, err := ExtractResumeText("text/plain", []byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractResumeTextUnsupported(t *testing.T) {
	if _, err := ExtractResumeText("image/png", []byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}
