package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteMarkdown writes the validation result as a Markdown report
func WriteMarkdown(w io.Writer, result *Result) error {
	var b strings.Builder

	title := "Config Validation Report"
	if result.Filename != "" {
		title += ": `" + result.Filename + "`"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	status := "✅ Passed"
	if result.HasErrors() {
		status = "❌ Failed"
	} else if result.WarningCount > 0 {
		status = "⚠️ Passed with warnings"
	}
	fmt.Fprintf(&b, "**Status:** %s\n\n", status)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Errors | %d |\n", result.ErrorCount)
	fmt.Fprintf(&b, "| Warnings | %d |\n", result.WarningCount)
	if result.TruncatedCount > 0 {
		fmt.Fprintf(&b, "| Truncated | %d |\n", result.TruncatedCount)
	}
	fmt.Fprintf(&b, "| Content patterns | %d |\n", result.Stats.ContentPatterns)
	fmt.Fprintf(&b, "| Safelist entries | %d |\n", result.Stats.SafelistEntries)
	fmt.Fprintf(&b, "| Animations | %d |\n", result.Stats.Animations)
	fmt.Fprintf(&b, "| Keyframes | %d |\n", result.Stats.Keyframes)
	if result.Stats.FilesMatched >= 0 {
		fmt.Fprintf(&b, "| Files matched | %d |\n", result.Stats.FilesMatched)
	}

	if len(result.Issues) > 0 {
		b.WriteString("\n## Issues\n\n")
		b.WriteString("| Location | Severity | Rule | Message |\n|---|---|---|---|\n")
		for _, issue := range result.Issues {
			location := issue.Pos.Filename
			if issue.Pos.Line > 0 {
				location = fmt.Sprintf("%s:%d:%d", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
			}
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n",
				location, issue.Severity, issue.FromLinter, escapeTableCell(issue.Text))
		}

		byLinter := result.IssuesByLinter()
		linters := make([]string, 0, len(byLinter))
		for linter := range byLinter {
			linters = append(linters, linter)
		}
		sort.Strings(linters)

		b.WriteString("\n## By Rule\n\n")
		for _, linter := range linters {
			fmt.Fprintf(&b, "- `%s`: %d\n", linter, byLinter[linter])
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// escapeTableCell keeps pipes and newlines from breaking a Markdown table row
func escapeTableCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
