package report

import (
	"fmt"
	"io"
	"sort"
)

// VerboseReporter prints document statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs the shape of the validated document
func (r *VerboseReporter) PrintStatistics(result Result) {
	s := result.Stats

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, paint(styleLocation, "Document Statistics", r.useColors))
	fmt.Fprintln(r.w, "-------------------")

	fmt.Fprintf(r.w, "Content Patterns:  %d\n", s.ContentPatterns)
	fmt.Fprintf(r.w, "Safelist Entries:  %d\n", s.SafelistEntries)
	fmt.Fprintf(r.w, "Animations:        %d\n", s.Animations)
	fmt.Fprintf(r.w, "Keyframes:         %d\n", s.Keyframes)
	fmt.Fprintf(r.w, "Declarations:      %d\n", s.Declarations)
	if s.FilesMatched >= 0 {
		fmt.Fprintf(r.w, "Files Matched:     %d\n", s.FilesMatched)
	}
}

// PrintCategories shows keyframe declarations grouped by property category
func (r *VerboseReporter) PrintCategories(result Result) {
	if len(result.Stats.DeclarationsByCategory) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, paint(styleLocation, "Animated Properties", r.useColors))
	fmt.Fprintln(r.w, "-------------------")

	categories := make([]string, 0, len(result.Stats.DeclarationsByCategory))
	for cat := range result.Stats.DeclarationsByCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		fmt.Fprintf(r.w, "%-18s %d\n", cat+":", result.Stats.DeclarationsByCategory[cat])
	}
}

// PrintRuleBreakdown lists issue counts per rule, errors first
func (r *VerboseReporter) PrintRuleBreakdown(result Result) {
	if len(result.Issues) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, paint(styleWarning, "Rules", r.useColors))
	fmt.Fprintln(r.w, "-----")

	type ruleCount struct {
		name     string
		severity string
		count    int
	}
	seen := make(map[string]*ruleCount)
	var rules []*ruleCount
	for _, issue := range result.Issues {
		rc, ok := seen[issue.FromLinter]
		if !ok {
			rc = &ruleCount{name: issue.FromLinter, severity: issue.Severity}
			seen[issue.FromLinter] = rc
			rules = append(rules, rc)
		}
		rc.count++
	}

	sort.Slice(rules, func(i, j int) bool {
		if rules[i].severity != rules[j].severity {
			return rules[i].severity == SeverityError
		}
		return rules[i].name < rules[j].name
	})

	for _, rc := range rules {
		fmt.Fprintf(r.w, "• %-18s %-8s %d\n", rc.name, rc.severity, rc.count)
	}
}
