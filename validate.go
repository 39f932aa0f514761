package twconfig

import (
	"errors"
	"fmt"

	"github.com/yacobolo/twconfig/internal/cssvalue"
	"github.com/yacobolo/twconfig/internal/report"
	"github.com/yacobolo/twconfig/internal/sourcepos"
)

type (
	// Issue is a single validation finding.
	Issue = report.Issue
	// IssuePos locates an issue in the document source.
	IssuePos = report.IssuePos
	// Result is the outcome of Validate.
	Result = report.Result
	// Stats summarizes the shape of a validated document.
	Stats = report.Stats
)

// Issue severities
const (
	SeverityError   = report.SeverityError
	SeverityWarning = report.SeverityWarning
)

// Rule names, as shown in the (rule) suffix of reported issues.
const (
	RuleRequired         = "required"
	RuleContentEmpty     = "content-empty"
	RuleContentGlob      = "content-glob"
	RuleContentUnmatched = "content-unmatched"
	RuleSafelistDup      = "safelist-dup"
	RuleSafelistClass    = "safelist-class"
	RuleKeyframesRef     = "keyframes-ref"
	RuleAnimationName    = "animation-name"
	RuleUnusedKeyframes  = "unused-keyframes"
	RuleKeyframeOffset   = "keyframe-offset"
	RuleCSSValue         = "css-value"
	RuleUnknownProperty  = "unknown-property"
	RuleUnknownKey       = "unknown-key"
)

// ValidateOptions configures Validate.
type ValidateOptions struct {
	// Root enables the content-unmatched rule: content patterns are matched
	// against files under Root, and files ignored by Root/.gitignore do not
	// count as matches.
	Root string

	MaxIssuesPerLinter int // 0 = unlimited
	MaxSameIssues      int // 0 = unlimited

	// Disable lists rule names to skip.
	Disable []string
}

// rule is a single data-contract check.
type rule struct {
	name     string
	severity string
	check    func(c *checker)
}

// rules run in order; issues are sorted by position afterwards.
var rules = []rule{
	{RuleRequired, SeverityError, checkRequired},
	{RuleContentEmpty, SeverityWarning, checkContentEmpty},
	{RuleContentGlob, SeverityError, checkContentGlobs},
	{RuleSafelistDup, SeverityError, checkSafelistDuplicates},
	{RuleSafelistClass, SeverityError, checkSafelistClasses},
	{RuleKeyframesRef, SeverityError, checkKeyframesRef},
	{RuleAnimationName, SeverityWarning, checkAnimationNames},
	{RuleUnusedKeyframes, SeverityWarning, checkUnusedKeyframes},
	{RuleKeyframeOffset, SeverityError, checkKeyframeOffsets},
	{RuleCSSValue, SeverityError, checkCSSValues},
	{RuleUnknownProperty, SeverityWarning, checkUnknownProperties},
	{RuleUnknownKey, SeverityWarning, checkUnknownKeys},
}

// RuleNames lists every rule Validate can report, including content-unmatched.
func RuleNames() []string {
	names := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		names = append(names, r.name)
	}
	return append(names, RuleContentUnmatched)
}

// checker carries the document under validation and collects issues.
type checker struct {
	doc    *Document
	cfg    *Config
	index  *sourcepos.Index
	rule   rule
	issues []Issue
}

// report records an issue for the running rule at the position of path.
func (c *checker) report(path []string, format string, args ...any) {
	c.reportAs(c.rule.name, c.rule.severity, path, fmt.Sprintf(format, args...))
}

func (c *checker) reportAs(name, severity string, path []string, text string) {
	issue := Issue{
		FromLinter: name,
		Text:       text,
		Severity:   severity,
		Pos:        IssuePos{Filename: c.doc.name()},
	}

	if pos := c.index.Nearest(path...); pos.IsValid() {
		issue.Pos.Line = pos.Line
		issue.Pos.Column = pos.Column
		if line := c.index.Line(pos.Line); line != "" {
			issue.SourceLines = []string{line}
		}
	}

	c.issues = append(c.issues, issue)
}

// Validate checks the document's data contract and returns every finding.
// Findings are never returned as errors; the error is reserved for failures
// to perform the checks, such as an unreadable content root.
func Validate(doc *Document, opts ValidateOptions) (*Result, error) {
	if doc == nil || doc.Config == nil {
		return nil, errors.New("validate: nil document")
	}

	disabled := make(map[string]bool, len(opts.Disable))
	for _, name := range opts.Disable {
		disabled[name] = true
	}

	c := &checker{doc: doc, cfg: doc.Config, index: doc.index}
	for _, r := range rules {
		if disabled[r.name] {
			continue
		}
		c.rule = r
		r.check(c)
	}

	stats := collectStats(doc.Config)

	if opts.Root != "" && !disabled[RuleContentUnmatched] {
		matched, err := checkContentUnmatched(c, opts.Root)
		if err != nil {
			return nil, err
		}
		stats.FilesMatched = matched
	}

	report.SortIssues(c.issues)

	result := &Result{
		Filename: doc.name(),
		Stats:    stats,
	}
	for _, issue := range c.issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	result.Issues, result.TruncatedCount = limitIssues(c.issues, opts)

	return result, nil
}

func collectStats(cfg *Config) Stats {
	stats := Stats{
		ContentPatterns:        len(cfg.Content),
		SafelistEntries:        len(cfg.Safelist),
		Animations:             len(cfg.Theme.Extend.Animation),
		Keyframes:              len(cfg.Theme.Extend.Keyframes),
		DeclarationsByCategory: make(map[string]int),
		FilesMatched:           -1,
	}

	for _, frames := range cfg.Theme.Extend.Keyframes {
		for _, decls := range frames {
			for prop := range decls {
				stats.Declarations++
				cat := cssvalue.Categorize(cssvalue.NormalizeProperty(prop))
				stats.DeclarationsByCategory[string(cat)]++
			}
		}
	}

	return stats
}

// limitIssues applies max-issues-per-linter and max-same-issues, returning
// the kept issues and how many were dropped.
func limitIssues(issues []Issue, opts ValidateOptions) ([]Issue, int) {
	originalCount := len(issues)

	if opts.MaxIssuesPerLinter > 0 {
		perLinter := make(map[string]int)
		var kept []Issue
		for _, issue := range issues {
			if perLinter[issue.FromLinter] < opts.MaxIssuesPerLinter {
				kept = append(kept, issue)
				perLinter[issue.FromLinter]++
			}
		}
		issues = kept
	}

	if opts.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, opts.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
