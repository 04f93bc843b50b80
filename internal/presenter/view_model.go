package presenter

import (
	"strings"

	"superhero/directory/internal/domain"
	"superhero/directory/internal/l10n"

	"github.com/PuerkitoBio/goquery"
)

const thumbnailVariant = "standard_medium"

// ViewModel is what the view renders for a single character
type ViewModel struct {
	Name         string
	Description  string
	ThumbnailURL string

	Character domain.Character
}

// NewViewModel maps a character for display, filling in localized text for a
// missing name or description.
func NewViewModel(hero domain.Character, localizer Localizer) ViewModel {
	name, ok := hero.Name()
	if name = strings.TrimSpace(name); !ok || name == "" {
		name = localizer.Text(l10n.Unnamed)
	}

	description, ok := hero.Description()
	if description = plainText(description); !ok || description == "" {
		description = localizer.Text(l10n.NoDescription)
	}

	return ViewModel{
		Name:         name,
		Description:  description,
		ThumbnailURL: hero.Thumbnail().URL(thumbnailVariant),
		Character:    hero,
	}
}

// plainText strips markup and collapses whitespace. Some descriptions come
// with HTML tags and entities.
func plainText(s string) string {
	if strings.ContainsAny(s, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
		if err == nil {
			s = doc.Text()
		}
	}
	return strings.Join(strings.Fields(s), " ")
}
