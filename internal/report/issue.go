// Package report formats validation findings for terminals, CI logs and
// machine consumers.
package report

// Issue represents a single validation finding in golangci-lint format.
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "keyframes-ref"
	Text        string   `json:"Text"`        // "animation \"fade\" has no matching keyframes"
	Severity    string   `json:"Severity"`    // "error", "warning"
	SourceLines []string `json:"SourceLines"` // Lines of the document around the finding
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies where in the document an issue was found.
// Line and Column are zero when the document has no source text.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"`
}

// Issue severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Stats summarizes the shape of a validated document.
type Stats struct {
	ContentPatterns int
	SafelistEntries int
	Animations      int
	Keyframes       int
	Declarations    int
	// DeclarationsByCategory counts keyframe properties by CSS category.
	DeclarationsByCategory map[string]int
	// FilesMatched is the number of distinct files matched by content
	// patterns; -1 when matching against disk was not requested.
	FilesMatched int
}

// Result contains the outcome of validating one document.
type Result struct {
	Filename       string
	Issues         []Issue
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits
	Stats          Stats
}

// HasErrors reports whether any error-severity issue was found.
func (r *Result) HasErrors() bool {
	return r.ErrorCount > 0
}

// IssuesByLinter counts issues per rule.
func (r *Result) IssuesByLinter() map[string]int {
	counts := make(map[string]int)
	for _, issue := range r.Issues {
		counts[issue.FromLinter]++
	}
	return counts
}
