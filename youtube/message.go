package youtube

import (
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/mo"
)

// URL scans a chat message for the first media link: the triggering message
// first, then the message it replies to. Within a message, plain URL entities
// take precedence; embedded text links in captions are only consulted when the
// message carries no entities of its own.
func URL(message *tgbotapi.Message) mo.Option[string] {
	if message == nil {
		return mo.None[string]()
	}

	for _, probe := range []*tgbotapi.Message{message, message.ReplyToMessage} {
		if probe == nil {
			continue
		}
		if link := scan(probe); link.IsPresent() {
			return link
		}
	}
	return mo.None[string]()
}

func scan(message *tgbotapi.Message) mo.Option[string] {
	if len(message.Entities) > 0 {
		text := message.Text
		if text == "" {
			text = message.Caption
		}
		for _, entity := range message.Entities {
			if entity.IsURL() {
				return mo.Some(utf16Slice(text, entity.Offset, entity.Length))
			}
		}
		return mo.None[string]()
	}

	for _, entity := range message.CaptionEntities {
		if entity.IsTextLink() {
			return mo.Some(entity.URL)
		}
	}
	return mo.None[string]()
}

// utf16Slice cuts a substring addressed in UTF-16 code units, the unit entity
// offsets are expressed in. Out-of-range bounds clamp to the text.
func utf16Slice(text string, offset, length int) string {
	units := utf16.Encode([]rune(text))

	if offset < 0 || offset >= len(units) || length <= 0 {
		return ""
	}
	end := offset + length
	if end > len(units) {
		end = len(units)
	}

	return string(utf16.Decode(units[offset:end]))
}
