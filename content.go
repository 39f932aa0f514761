package twconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// patternMatch is the outcome of matching one content pattern on disk.
type patternMatch struct {
	files   []string
	ignored int
}

// MatchContent expands the document's content patterns against files under
// root and returns the matched files, sorted and without duplicates.
// Negated patterns ("!dist/**") remove files matched by earlier patterns.
// Files ignored by root/.gitignore are never returned.
func MatchContent(root string, patterns []string) ([]string, error) {
	matches, err := matchPatterns(root, patterns)
	if err != nil {
		return nil, err
	}
	return resolveFiles(patterns, matches), nil
}

// resolveFiles applies patterns in order: a match adds a file, a negated
// match removes it.
func resolveFiles(patterns []string, matches []patternMatch) []string {
	files := make(map[string]bool)
	for i, p := range patterns {
		_, negated := contentPattern(p)
		for _, f := range matches[i].files {
			files[f] = !negated
		}
	}

	var result []string
	for f, keep := range files {
		if keep {
			result = append(result, f)
		}
	}
	slices.Sort(result)
	return result
}

// matchPatterns globs every valid pattern concurrently. Invalid and empty
// patterns yield an empty match.
func matchPatterns(root string, patterns []string) ([]patternMatch, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("content root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s is not a directory", root)
	}

	// A missing or unreadable .gitignore means nothing is ignored.
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		gi = nil
	}

	results := make([]patternMatch, len(patterns))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range patterns {
		pattern, _ := contentPattern(p)
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			continue
		}

		g.Go(func() error {
			found, err := globFiles(root, pattern)
			if err != nil {
				return fmt.Errorf("matching content pattern %q: %w", p, err)
			}

			var m patternMatch
			for _, f := range found {
				if gi != nil && isIgnored(gi, root, f) {
					m.ignored++
					continue
				}
				m.files = append(m.files, f)
			}
			results[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// globFiles matches pattern against the files under root. The literal
// directory prefix of the pattern is opened as a filesystem, so root and that
// prefix are never read as glob syntax.
func globFiles(root, pattern string) ([]string, error) {
	base, rest := doublestar.SplitPattern(filepath.ToSlash(filepath.Clean(pattern)))

	dir := filepath.FromSlash(base)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}

	found, err := doublestar.Glob(os.DirFS(dir), rest, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for i, f := range found {
		found[i] = filepath.Join(dir, filepath.FromSlash(f))
	}
	return found, nil
}

func isIgnored(gi *ignore.GitIgnore, root, file string) bool {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return false
	}
	return gi.MatchesPath(filepath.ToSlash(rel))
}

// checkContentUnmatched reports content patterns that match no files under
// root and returns the number of files the patterns select.
func checkContentUnmatched(c *checker, root string) (int, error) {
	patterns := c.cfg.Content
	matches, err := matchPatterns(root, patterns)
	if err != nil {
		return 0, err
	}

	for i, p := range patterns {
		pattern, negated := contentPattern(p)
		if negated || pattern == "" || !doublestar.ValidatePattern(pattern) {
			continue
		}

		m := matches[i]
		if len(m.files) > 0 {
			continue
		}

		path := []string{"content", strconv.Itoa(i)}
		text := fmt.Sprintf("content pattern %q matches no files under %s", p, root)
		if m.ignored > 0 {
			text = fmt.Sprintf("content pattern %q only matches gitignored files (%d)", p, m.ignored)
		}
		c.reportAs(RuleContentUnmatched, SeverityWarning, path, text)
	}

	return len(resolveFiles(patterns, matches)), nil
}
