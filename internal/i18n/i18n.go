// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package i18n translates assessment messages. Catalogs are YAML files
// embedded in the binary, keyed by the English message id. English needs no
// catalog: a missing entry translates to its own id.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// Translator looks up translated message formats.
type Translator interface {
	// Gettext returns the translation of msgid.
	Gettext(msgid string) string

	// Ngettext returns the plural form of a message that matches n.
	Ngettext(singular, plural string, n int) string
}

// entry is one message in a catalog file. Plain messages set Text; plural
// messages set Forms keyed by CLDR category (zero, one, two, few, many, other).
type entry struct {
	Text  string            `yaml:"text"`
	Forms map[string]string `yaml:"forms"`
}

type catalogFile struct {
	Locale   string           `yaml:"locale"`
	Messages map[string]entry `yaml:"messages"`
}

// Catalog is a Translator backed by one locale's messages. A Catalog is
// read-only after construction.
type Catalog struct {
	locale   string
	tag      language.Tag
	messages map[string]entry
}

// English returns the identity translator.
func English() *Catalog {
	return &Catalog{locale: "en", tag: language.English}
}

// Parse builds a catalog from YAML data.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if f.Locale == "" {
		return nil, fmt.Errorf("parsing catalog: locale is required")
	}
	tag, err := language.Parse(strings.ReplaceAll(f.Locale, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("parsing catalog locale %q: %w", f.Locale, err)
	}
	return &Catalog{locale: f.Locale, tag: tag, messages: f.Messages}, nil
}

// Load returns the embedded catalog for a locale ("de_DE", "de"). Locales
// without a catalog get English.
func Load(locale string) (*Catalog, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return English(), nil
	}
	base, _ := tag.Base()
	data, err := catalogFS.ReadFile(path.Join("catalogs", base.String()+".yaml"))
	if err != nil {
		return English(), nil
	}
	return Parse(data)
}

// Available lists the locales that have an embedded catalog, plus "en".
func Available() []string {
	out := []string{"en"}
	entries, err := catalogFS.ReadDir("catalogs")
	if err != nil {
		return out
	}
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(out)
	return out
}

// Locale returns the catalog's locale.
func (c *Catalog) Locale() string {
	return c.locale
}

// Gettext implements Translator.
func (c *Catalog) Gettext(msgid string) string {
	if e, ok := c.messages[msgid]; ok && e.Text != "" {
		return e.Text
	}
	return msgid
}

// Ngettext implements Translator. The catalog entry is keyed by the
// singular id; untranslated messages follow the English rule.
func (c *Catalog) Ngettext(singular, pluralID string, n int) string {
	if e, ok := c.messages[singular]; ok && len(e.Forms) > 0 {
		if s, ok := e.Forms[formName(c.form(n))]; ok {
			return s
		}
		if s, ok := e.Forms["other"]; ok {
			return s
		}
	}
	if plural.Cardinal.MatchPlural(language.English, abs(n), 0, 0, 0, 0) == plural.One {
		return singular
	}
	return pluralID
}

func (c *Catalog) form(n int) plural.Form {
	return plural.Cardinal.MatchPlural(c.tag, abs(n), 0, 0, 0, 0)
}

func formName(f plural.Form) string {
	switch f {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var verbPattern = regexp.MustCompile(`%%|%(\d+)\$[sd]|%[sd]`)

// Sprintf formats a gettext-style message. Positional verbs (%1$s, %3$d)
// may appear in any order or not at all; plain %s and %d consume arguments
// in order. Unused arguments are ignored, a verb without an argument is
// kept as written, %% becomes % and any other % is copied through.
func Sprintf(format string, args ...any) string {
	next := 0
	arg := func(n int, verb string) string {
		if n < 1 || n > len(args) {
			return verb
		}
		return fmt.Sprint(args[n-1])
	}
	return verbPattern.ReplaceAllStringFunc(format, func(v string) string {
		switch {
		case v == "%%":
			return "%"
		case strings.Contains(v, "$"):
			n, _ := strconv.Atoi(v[1:strings.IndexByte(v, '$')])
			return arg(n, v)
		default:
			next++
			return arg(next, v)
		}
	})
}

// Anchor returns the opening and closing tags of a link that opens in a new
// tab. Both are empty when url is empty, so messages render as plain text.
func Anchor(url string) (openTag, closeTag string) {
	if url == "" {
		return "", ""
	}
	return "<a href='" + url + "' target='_blank'>", "</a>"
}
