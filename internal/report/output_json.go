package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	File      string      `json:"file"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues int            `json:"total_issues"`
	Errors      int            `json:"errors"`
	Warnings    int            `json:"warnings"`
	Truncated   int            `json:"truncated"`
	ByRule      map[string]int `json:"by_rule"`
}

// JSONStats contains document shape statistics
type JSONStats struct {
	ContentPatterns        int            `json:"content_patterns"`
	SafelistEntries        int            `json:"safelist_entries"`
	Animations             int            `json:"animations"`
	Keyframes              int            `json:"keyframes"`
	Declarations           int            `json:"declarations"`
	DeclarationsByCategory map[string]int `json:"declarations_by_category,omitempty"`
	FilesMatched           *int           `json:"files_matched,omitempty"`
}

// JSONIssue represents a single validation issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the validation result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	stats := JSONStats{
		ContentPatterns:        result.Stats.ContentPatterns,
		SafelistEntries:        result.Stats.SafelistEntries,
		Animations:             result.Stats.Animations,
		Keyframes:              result.Stats.Keyframes,
		Declarations:           result.Stats.Declarations,
		DeclarationsByCategory: result.Stats.DeclarationsByCategory,
	}
	if result.Stats.FilesMatched >= 0 {
		matched := result.Stats.FilesMatched
		stats.FilesMatched = &matched
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		File:      result.Filename,
		Summary: JSONSummary{
			TotalIssues: len(result.Issues),
			Errors:      result.ErrorCount,
			Warnings:    result.WarningCount,
			Truncated:   result.TruncatedCount,
			ByRule:      result.IssuesByLinter(),
		},
		Stats:  stats,
		Issues: jsonIssues,
	}
}
