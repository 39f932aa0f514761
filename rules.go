package twconfig

import (
	"errors"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"

	"github.com/yacobolo/twconfig/internal/cssvalue"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report document keys (content, theme.extend) rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func checkRequired(c *checker) {
	err := structValidator.Struct(c.cfg)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.report(nil, "%v", err)
		return
	}

	for _, fe := range verrs {
		path := namespacePath(fe.Namespace())
		field := displayPath(path)
		switch fe.Tag() {
		case "required":
			c.report(path, "%s must not be empty", field)
		case "min":
			if len(path) > 4 {
				c.report(path, "%s must declare at least one property", field)
			} else {
				c.report(path, "%s must define at least one keyframe", field)
			}
		default:
			c.report(path, "%s failed %q validation", field, fe.Tag())
		}
	}
}

// namespacePath splits a validator namespace such as
// "Config.theme.extend.keyframes[slide-in]" into document path elements,
// dropping the root struct name.
func namespacePath(ns string) []string {
	_, ns, _ = strings.Cut(ns, ".")

	var (
		path  []string
		cur   strings.Builder
		inKey bool
	)
	flush := func() {
		if cur.Len() > 0 {
			path = append(path, cur.String())
			cur.Reset()
		}
	}

	for _, r := range ns {
		switch {
		case r == '[' && !inKey:
			flush()
			inKey = true
		case r == ']' && inKey:
			// map keys may be empty; keep them as elements
			path = append(path, cur.String())
			cur.Reset()
			inKey = false
		case r == '.' && !inKey:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return path
}

// displayPath renders a document path as content[0] or
// theme.extend.keyframes["slide-in"].
func displayPath(path []string) string {
	var b strings.Builder
	for i, elem := range path {
		switch {
		case isIndex(elem) && i > 0:
			b.WriteString("[" + elem + "]")
		case i >= 3:
			b.WriteString("[" + strconv.Quote(elem) + "]")
		default:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(elem)
		}
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

func checkContentEmpty(c *checker) {
	if len(c.cfg.Content) == 0 {
		c.report([]string{"content"}, "content has no patterns; no template files will be scanned for class names")
	}
}

// contentPattern strips the negation prefix from a content pattern.
func contentPattern(p string) (pattern string, negated bool) {
	if rest, ok := strings.CutPrefix(p, "!"); ok {
		return rest, true
	}
	return p, false
}

func checkContentGlobs(c *checker) {
	for i, p := range c.cfg.Content {
		if p == "" {
			continue // reported by required
		}
		pattern, _ := contentPattern(p)
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			c.report([]string{"content", strconv.Itoa(i)}, "invalid glob pattern %q", p)
		}
	}
}

func checkSafelistDuplicates(c *checker) {
	seen := make(map[string]int, len(c.cfg.Safelist))
	for i, class := range c.cfg.Safelist {
		if first, ok := seen[class]; ok {
			c.report([]string{"safelist", strconv.Itoa(i)},
				"duplicate safelist entry %q (first listed at index %d)", class, first)
			continue
		}
		seen[class] = i
	}
}

func checkSafelistClasses(c *checker) {
	for i, class := range c.cfg.Safelist {
		path := []string{"safelist", strconv.Itoa(i)}
		switch {
		case class == "":
			// reported by required
		case strings.ContainsFunc(class, unicode.IsSpace):
			c.report(path, "safelist entry %q contains whitespace; list each class separately", class)
		case strings.HasPrefix(class, "."):
			c.report(path, "safelist entry %q starts with a dot; list the class name without the selector", class)
		}
	}
}

func animationPath(name string) []string {
	return []string{"theme", "extend", "animation", name}
}

func keyframesPath(name string, rest ...string) []string {
	return append([]string{"theme", "extend", "keyframes", name}, rest...)
}

func checkKeyframesRef(c *checker) {
	extend := c.cfg.Theme.Extend
	for _, name := range sortedKeys(extend.Animation) {
		if _, ok := extend.Keyframes[name]; !ok {
			c.report(animationPath(name), "animation %q has no matching keyframes", name)
		}
	}
}

func checkAnimationNames(c *checker) {
	extend := c.cfg.Theme.Extend
	for _, name := range sortedKeys(extend.Animation) {
		value := extend.Animation[name]
		refs, err := cssvalue.AnimationNames(value)
		if err != nil {
			continue // reported by css-value
		}

		if len(refs) == 0 && !strings.EqualFold(strings.TrimSpace(value), "none") {
			c.report(animationPath(name), "animation %q does not name any keyframes", name)
			continue
		}

		for _, ref := range refs {
			if _, ok := extend.Keyframes[ref]; ok {
				continue
			}
			if ref == name {
				continue // reported by keyframes-ref
			}
			c.report(animationPath(name), "animation %q references undefined keyframes %q", name, ref)
		}
	}
}

func checkUnusedKeyframes(c *checker) {
	extend := c.cfg.Theme.Extend

	used := make(map[string]bool, len(extend.Animation))
	for name, value := range extend.Animation {
		used[name] = true
		refs, _ := cssvalue.AnimationNames(value)
		for _, ref := range refs {
			used[ref] = true
		}
	}

	for _, name := range sortedKeys(extend.Keyframes) {
		if !used[name] {
			c.report(keyframesPath(name), "keyframes %q are not used by any animation", name)
		}
	}
}

func checkKeyframeOffsets(c *checker) {
	extend := c.cfg.Theme.Extend
	for _, name := range sortedKeys(extend.Keyframes) {
		for _, offset := range sortedKeys(extend.Keyframes[name]) {
			if _, err := cssvalue.ParseOffsets(offset); err != nil {
				c.report(keyframesPath(name, offset), "invalid keyframe selector %q in %q: %v", offset, name, err)
			}
		}
	}
}

func checkCSSValues(c *checker) {
	extend := c.cfg.Theme.Extend

	for _, name := range sortedKeys(extend.Animation) {
		value := extend.Animation[name]
		if value == "" {
			continue // reported by required
		}
		if _, err := cssvalue.Lex(value); err != nil {
			c.report(animationPath(name), "invalid animation value for %q: %v", name, err)
		}
	}

	for _, name := range sortedKeys(extend.Keyframes) {
		frames := extend.Keyframes[name]
		for _, offset := range sortedKeys(frames) {
			decls := frames[offset]
			for _, prop := range sortedKeys(decls) {
				path := keyframesPath(name, offset, prop)
				if !cssvalue.IsIdent(cssvalue.NormalizeProperty(prop)) {
					c.report(path, "invalid property name %q in keyframes %q at %s", prop, name, offset)
					continue
				}
				if _, err := cssvalue.Lex(decls[prop]); err != nil {
					c.report(path, "invalid value for %q in keyframes %q at %s: %v", prop, name, offset, err)
				}
			}
		}
	}
}

func checkUnknownProperties(c *checker) {
	extend := c.cfg.Theme.Extend
	for _, name := range sortedKeys(extend.Keyframes) {
		frames := extend.Keyframes[name]
		for _, offset := range sortedKeys(frames) {
			for _, prop := range sortedKeys(frames[offset]) {
				normalized := cssvalue.NormalizeProperty(prop)
				if !cssvalue.IsIdent(normalized) || cssvalue.IsKnownProperty(normalized) {
					continue
				}
				c.report(keyframesPath(name, offset, prop), "unknown CSS property %q in keyframes %q", prop, name)
			}
		}
	}
}

// documentShape lists the keys allowed under each structured parent.
// Parents not listed here hold free-form keys (animation names, offsets).
var documentShape = map[string][]string{
	"":             {"content", "safelist", "theme"},
	"theme":        {"extend"},
	"theme.extend": {"animation", "keyframes"},
}

// checkUnknownKeys needs source positions, so it only runs for documents
// that were parsed from text.
func checkUnknownKeys(c *checker) {
	for _, path := range c.index.Keys() {
		parent := strings.Join(path[:len(path)-1], ".")
		allowed, structured := documentShape[parent]
		if !structured {
			continue
		}
		key := path[len(path)-1]
		if !slices.Contains(allowed, key) {
			c.report(path, "unknown key %q is ignored", strings.Join(path, "."))
		}
	}
}
