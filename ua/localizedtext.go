package ua

import (
	"strings"

	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

const (
	localizedTextLocaleMask byte = 0x01
	localizedTextTextMask   byte = 0x02
)

// LocalizedText is a (locale, text) pair. Either half may be absent on the
// wire, signaled by the two low bits of a leading mask byte rather than the
// -1 length convention String alone uses.
type LocalizedText struct {
	Locale String
	Text   String
}

func NewLocalizedText(locale, text string) LocalizedText {
	return LocalizedText{Locale: NewString(locale), Text: NewString(text)}
}

func (v *LocalizedText) Init() {
	v.Locale.Init()
	v.Text.Init()
}
func (v *LocalizedText) Clear() {
	v.Locale.Clear()
	v.Text.Clear()
}

func (v *LocalizedText) CopyTo(dst Value) error {
	d, ok := dst.(*LocalizedText)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *LocalizedText")
	}
	if err := v.Locale.CopyTo(&d.Locale); err != nil {
		return err
	}
	return v.Text.CopyTo(&d.Text)
}

func (v *LocalizedText) CompareTo(other Value) (int, error) {
	o, ok := other.(*LocalizedText)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *LocalizedText")
	}
	if c := v.Locale.compare(&o.Locale.byteSequence); c != 0 {
		return c, nil
	}
	return v.Text.compare(&o.Text.byteSequence), nil
}

func (v *LocalizedText) Encode(w *codec.Writer) error {
	var mask byte
	if !v.Locale.IsNull() {
		mask |= localizedTextLocaleMask
	}
	if !v.Text.IsNull() {
		mask |= localizedTextTextMask
	}
	if err := w.WriteByte(mask); err != nil {
		return err
	}
	if mask&localizedTextLocaleMask != 0 {
		if err := v.Locale.Encode(w); err != nil {
			return err
		}
	}
	if mask&localizedTextTextMask != 0 {
		if err := v.Text.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (v *LocalizedText) Decode(r *codec.Reader) error {
	mask, err := r.ReadByte()
	if err != nil {
		v.Clear()
		return err
	}
	v.Locale = NullString()
	v.Text = NullString()
	if mask&localizedTextLocaleMask != 0 {
		if err := v.Locale.Decode(r); err != nil {
			v.Clear()
			return err
		}
	}
	if mask&localizedTextTextMask != 0 {
		if err := v.Text.Decode(r); err != nil {
			v.Clear()
			return err
		}
	}
	return nil
}

// localeEntry is one (locale, text) pair in a LocalizedTextSet's ordered
// additional-locales list.
type localeEntry struct {
	locale string
	text   string
}

// LocalizedTextSet is a server-side convenience not present on the wire: a
// default (locale, text) pair plus an ordered list of additional per-locale
// variants, resolved against a caller-supplied supported-locales list per
// spec §4.2.
type LocalizedTextSet struct {
	defaultLocale string
	Default       string
	locales       []localeEntry
	supported     map[string]bool
}

// NewLocalizedTextSet creates a set with defaultText as the locale-less
// default text, accepting only locales present in supportedLocales for
// subsequent AddOrSetLocale calls.
func NewLocalizedTextSet(defaultText string, supportedLocales ...string) *LocalizedTextSet {
	supported := make(map[string]bool, len(supportedLocales))
	for _, l := range supportedLocales {
		supported[l] = true
	}
	return &LocalizedTextSet{Default: defaultText, supported: supported}
}

// AddOrSetLocale normalizes a request against the set's supported-locales
// list, per spec §4.2:
//   - locale=="" and text=="": clears the default and the entire list.
//   - locale unknown (not in supportedLocales) and text != "": error.
//   - locale known and text != "": insert (append) or replace the entry for
//     that locale; if locale matches the current default's locale, the
//     default itself is replaced instead of adding a list entry.
//   - locale known and text == "": removes the entry for that locale; if
//     that entry was the default, the first list entry (if any) is
//     promoted to take its place.
func (s *LocalizedTextSet) AddOrSetLocale(locale, text string) error {
	if locale == "" && text == "" {
		s.defaultLocale = ""
		s.Default = ""
		s.locales = nil
		return nil
	}
	if locale != "" && !s.supported[locale] && text != "" {
		return status.New(status.InvalidParameters, "AddOrSetLocale: unknown locale %q", locale)
	}
	if text != "" {
		if locale == s.defaultLocale {
			s.Default = text
			return nil
		}
		for i := range s.locales {
			if s.locales[i].locale == locale {
				s.locales[i].text = text
				return nil
			}
		}
		s.locales = append(s.locales, localeEntry{locale: locale, text: text})
		return nil
	}
	// text == "": remove the entry for locale.
	if locale == s.defaultLocale {
		if len(s.locales) > 0 {
			promoted := s.locales[0]
			s.locales = s.locales[1:]
			s.defaultLocale = promoted.locale
			s.Default = promoted.text
		} else {
			s.defaultLocale = ""
			s.Default = ""
		}
		return nil
	}
	for i := range s.locales {
		if s.locales[i].locale == locale {
			s.locales = append(s.locales[:i], s.locales[i+1:]...)
			return nil
		}
	}
	return nil
}

// GetPreferredLocale resolves the best match from preferred (in priority
// order) against the stored locales: an exact match first, then a
// language-only match (the part before '-'), falling back to Default.
func (s *LocalizedTextSet) GetPreferredLocale(preferred []string) LocalizedText {
	for _, want := range preferred {
		if want == s.defaultLocale {
			return NewLocalizedText(s.defaultLocale, s.Default)
		}
		for _, e := range s.locales {
			if e.locale == want {
				return NewLocalizedText(e.locale, e.text)
			}
		}
	}
	for _, want := range preferred {
		lang := languageOf(want)
		if languageOf(s.defaultLocale) == lang && s.defaultLocale != "" {
			return NewLocalizedText(s.defaultLocale, s.Default)
		}
		for _, e := range s.locales {
			if languageOf(e.locale) == lang {
				return NewLocalizedText(e.locale, e.text)
			}
		}
	}
	return NewLocalizedText("", s.Default)
}

func languageOf(locale string) string {
	if i := strings.IndexByte(locale, '-'); i >= 0 {
		return strings.ToLower(locale[:i])
	}
	return strings.ToLower(locale)
}

func init() {
	register(TypeLocalizedText, "LocalizedText", 32, func() Value { return new(LocalizedText) })
}
