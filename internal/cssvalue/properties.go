package cssvalue

import (
	"strings"
	"unicode"
)

// Category groups related CSS properties for reporting.
type Category string

// Property categories used in document statistics.
const (
	CategoryVisual     Category = "Visual"
	CategoryLayout     Category = "Layout"
	CategoryTypography Category = "Typography"
	CategoryEffects    Category = "Effects"
	CategoryCustom     Category = "Custom"
	CategoryVendor     Category = "Vendor"
	CategoryUnknown    Category = "Unknown"
)

// propertyCategories lists the properties commonly animated in keyframes.
var propertyCategories = map[string]Category{
	// Visual
	"background":          CategoryVisual,
	"background-color":    CategoryVisual,
	"background-image":    CategoryVisual,
	"background-size":     CategoryVisual,
	"background-position": CategoryVisual,
	"color":               CategoryVisual,
	"border":              CategoryVisual,
	"border-color":        CategoryVisual,
	"border-radius":       CategoryVisual,
	"border-width":        CategoryVisual,
	"box-shadow":          CategoryVisual,
	"opacity":             CategoryVisual,
	"outline":             CategoryVisual,
	"outline-color":       CategoryVisual,
	"outline-offset":      CategoryVisual,
	"fill":                CategoryVisual,
	"fill-opacity":        CategoryVisual,
	"stroke":              CategoryVisual,
	"stroke-dasharray":    CategoryVisual,
	"stroke-dashoffset":   CategoryVisual,
	"visibility":          CategoryVisual,

	// Layout
	"display":            CategoryLayout,
	"flex":               CategoryLayout,
	"flex-basis":         CategoryLayout,
	"flex-grow":          CategoryLayout,
	"flex-shrink":        CategoryLayout,
	"gap":                CategoryLayout,
	"grid-template":      CategoryLayout,
	"position":           CategoryLayout,
	"inset":              CategoryLayout,
	"top":                CategoryLayout,
	"right":              CategoryLayout,
	"bottom":             CategoryLayout,
	"left":               CategoryLayout,
	"width":              CategoryLayout,
	"height":             CategoryLayout,
	"min-width":          CategoryLayout,
	"min-height":         CategoryLayout,
	"max-width":          CategoryLayout,
	"max-height":         CategoryLayout,
	"inline-size":        CategoryLayout,
	"block-size":         CategoryLayout,
	"padding":            CategoryLayout,
	"margin":             CategoryLayout,
	"overflow":           CategoryLayout,
	"z-index":            CategoryLayout,
	"aspect-ratio":       CategoryLayout,
	"object-position":    CategoryLayout,
	"content":            CategoryLayout,
	"content-visibility": CategoryLayout,

	// Typography
	"font-size":               CategoryTypography,
	"font-weight":             CategoryTypography,
	"font-variation-settings": CategoryTypography,
	"line-height":             CategoryTypography,
	"letter-spacing":          CategoryTypography,
	"word-spacing":            CategoryTypography,
	"text-decoration-color":   CategoryTypography,
	"text-shadow":             CategoryTypography,
	"text-indent":             CategoryTypography,

	// Effects
	"transform":                 CategoryEffects,
	"transform-origin":          CategoryEffects,
	"translate":                 CategoryEffects,
	"rotate":                    CategoryEffects,
	"scale":                     CategoryEffects,
	"perspective":               CategoryEffects,
	"animation-timing-function": CategoryEffects,
	"filter":                    CategoryEffects,
	"backdrop-filter":           CategoryEffects,
	"clip-path":                 CategoryEffects,
	"mask-position":             CategoryEffects,
	"mask-size":                 CategoryEffects,
	"offset-distance":           CategoryEffects,
	"offset-path":               CategoryEffects,
	"offset-rotate":             CategoryEffects,
}

// longhandFamilies cover the longhands of box shorthands
// (margin-top, padding-inline-start, border-bottom-width).
var longhandFamilies = []struct {
	prefix   string
	category Category
}{
	{"margin-", CategoryLayout},
	{"padding-", CategoryLayout},
	{"inset-", CategoryLayout},
	{"scroll-margin-", CategoryLayout},
	{"scroll-padding-", CategoryLayout},
	{"border-", CategoryVisual},
}

// NormalizeProperty converts a camelCase property name as written in
// JavaScript style objects (backgroundColor, WebkitTransform) into its CSS
// form (background-color, -webkit-transform). Custom properties and names
// that are already kebab-case are returned unchanged.
func NormalizeProperty(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}

	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			// a leading capital is a vendor prefix: WebkitTransform
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Categorize returns the category of a normalized property name.
func Categorize(name string) Category {
	if strings.HasPrefix(name, "--") {
		return CategoryCustom
	}
	if cat, ok := propertyCategories[name]; ok {
		return cat
	}

	for _, prefix := range []string{"-webkit-", "-moz-", "-ms-", "-o-"} {
		if strings.HasPrefix(name, prefix) {
			return CategoryVendor
		}
	}

	for _, family := range longhandFamilies {
		if strings.HasPrefix(name, family.prefix) {
			return family.category
		}
	}
	if strings.HasPrefix(name, "flex-") || strings.HasPrefix(name, "grid-") {
		return CategoryLayout
	}
	if strings.HasPrefix(name, "font-") || strings.HasPrefix(name, "text-") {
		return CategoryTypography
	}
	if strings.HasPrefix(name, "transition-") || strings.HasPrefix(name, "mask-") {
		return CategoryEffects
	}

	return CategoryUnknown
}

// IsKnownProperty reports whether a normalized property name is a custom
// property, a vendor-prefixed property or a property in the known table.
func IsKnownProperty(name string) bool {
	return Categorize(name) != CategoryUnknown
}

// IsIdent reports whether name is a syntactically valid property name:
// a CSS identifier or a custom property.
func IsIdent(name string) bool {
	if name == "" || name == "-" || name == "--" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '-', r == '_', unicode.IsLetter(r), r > unicode.MaxASCII:
		case unicode.IsDigit(r):
			// identifiers cannot start with a digit, or a hyphen followed by one
			if i == 0 || (i == 1 && name[0] == '-') {
				return false
			}
		default:
			return false
		}
	}
	return true
}
