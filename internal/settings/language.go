package settings

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/osse101/NutriFind_Go/internal/domain"
)

// SupportedLanguages lists the interface languages in preference order
var SupportedLanguages = []language.Tag{
	language.English,
	language.Afrikaans,
	language.Zulu,
}

var languageMatcher = language.NewMatcher(SupportedLanguages)

// NormalizeLanguage maps a BCP 47 code onto a supported language and returns
// its base code. Regional variants such as "en-GB" resolve to their base.
func NormalizeLanguage(code string) (string, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidLanguage, code)
	}

	_, index, confidence := languageMatcher.Match(tag)
	if confidence < language.High {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidLanguage, code)
	}

	base, _ := SupportedLanguages[index].Base()
	return base.String(), nil
}
