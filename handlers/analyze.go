package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"freelanceconnect/ai"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyzeResume extracts text from an uploaded resume and asks the
// completion model for recommendations against the given job
// requirements.
func AnalyzeResume(c *gin.Context) {
	if analyzer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Resume analysis is not configured"})
		return
	}

	jobRequirements := c.PostForm("job_requirements")
	if strings.TrimSpace(jobRequirements) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Job requirements not provided"})
		return
	}

	file, fh, err := c.Request.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No resume file uploaded"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read resume"})
		return
	}

	resumeText, err := ai.ExtractResumeText(resumeMIME(fh), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported resume format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	analysis, err := analyzer.AnalyzeResume(ctx, resumeText, jobRequirements)
	if err != nil {
		log.Error("resume analysis", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

// resumeMIME prefers the client-declared content type and falls back to
// the file extension.
func resumeMIME(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
