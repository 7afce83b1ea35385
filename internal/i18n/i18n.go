package i18n

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var embeddedLocales embed.FS

type Translations struct {
	bundle      *i18n.Bundle
	localize    *i18n.Localizer
	defaultLang string
}

// NewTranslations loads the embedded locales plus any active.*.toml found in
// localesDir, which may be empty. Files in localesDir override embedded messages.
func NewTranslations(defaultLang, localesDir string) (*Translations, error) {
	if defaultLang == "" {
		return nil, fmt.Errorf("default language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	embedded, err := embeddedLocales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded locales: %w", err)
	}
	for _, entry := range embedded {
		if _, err := bundle.LoadMessageFileFS(embeddedLocales, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("error loading embedded locale %s: %w", entry.Name(), err)
		}
	}

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	return &Translations{
		bundle:      bundle,
		localize:    i18n.NewLocalizer(bundle, defaultLang),
		defaultLang: defaultLang,
	}, nil
}

// ForAcceptLanguage returns a copy localized for the best supported match of
// an Accept-Language header value, falling back to the default language.
func (t *Translations) ForAcceptLanguage(acceptLanguage string) *Translations {
	lang := t.MatchLanguage(acceptLanguage)
	if lang == t.defaultLang {
		return t
	}
	return &Translations{
		bundle:      t.bundle,
		localize:    i18n.NewLocalizer(t.bundle, lang, t.defaultLang),
		defaultLang: t.defaultLang,
	}
}

// MatchLanguage picks the best supported language for an Accept-Language
// header value.
func (t *Translations) MatchLanguage(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}

	supported := t.bundle.LanguageTags()
	_, idx, confidence := language.NewMatcher(supported).Match(tags...)
	if confidence == language.No {
		return t.defaultLang
	}
	base, _ := supported[idx].Base()
	return base.String()
}

func (t *Translations) GetMessage(messageID string, count int, templateData interface{}) string {
	cfg := &i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	}
	if count > 0 {
		cfg.PluralCount = count
	}

	localized, err := t.localize.Localize(cfg)
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}
