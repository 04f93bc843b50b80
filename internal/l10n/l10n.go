// Package l10n holds the user-facing strings of the directory and renders
// them for the configured language.
package l10n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys
const (
	ErrorTitle       = "general.error.title"
	ErrorGeneric     = "general.error.text"
	ErrorUnreachable = "http.error.unreachable"
	ErrorClient      = "http.error.client"
	ErrorServer      = "http.error.server"
	ErrorNoData      = "http.error.no_data"
	ErrorDecoding    = "http.error.decoding"
	Unnamed          = "superhero.unnamed"
	NoDescription    = "superhero.no_description"
)

var entries = map[string]map[language.Tag]string{
	ErrorTitle: {
		language.English: "Error",
		language.Russian: "Ошибка",
	},
	ErrorGeneric: {
		language.English: "Something went wrong. Please try again.",
		language.Russian: "Что-то пошло не так. Попробуйте ещё раз.",
	},
	ErrorUnreachable: {
		language.English: "The server could not be reached. Check your connection and try again.",
		language.Russian: "Сервер недоступен. Проверьте подключение и попробуйте ещё раз.",
	},
	ErrorClient: {
		language.English: "The request could not be sent.",
		language.Russian: "Не удалось отправить запрос.",
	},
	ErrorServer: {
		language.English: "The server returned an error.",
		language.Russian: "Сервер вернул ошибку.",
	},
	ErrorNoData: {
		language.English: "The server returned no data.",
		language.Russian: "Сервер не вернул данных.",
	},
	ErrorDecoding: {
		language.English: "The server response could not be read.",
		language.Russian: "Не удалось разобрать ответ сервера.",
	},
	Unnamed: {
		language.English: "Unnamed hero",
		language.Russian: "Безымянный герой",
	},
	NoDescription: {
		language.English: "No description available.",
		language.Russian: "Описание отсутствует.",
	},
}

var (
	supported = []language.Tag{language.English, language.Russian}
	matcher   = language.NewMatcher(supported)
	messages  = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, translations := range entries {
		for tag, text := range translations {
			if err := b.SetString(tag, key, text); err != nil {
				panic(err)
			}
		}
	}
	return b
}

type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the closest supported match of lang.
// Unknown or malformed languages fall back to English.
func New(lang string) *Localizer {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	tag, _ = language.Compose(base)

	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Text returns the message for key. Unknown keys are returned unchanged.
func (l *Localizer) Text(key string) string {
	return l.printer.Sprintf(message.Key(key, key))
}
