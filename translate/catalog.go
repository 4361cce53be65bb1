package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Messages is the catalog of translations, keyed by en-US format string.
var Messages = newMessages()

var _messages = map[language.Tag]map[string]string{
	language.German: {
		"address out of bounds":                "Adresse außerhalb des Speicherfensters",
		"fetch":                                "Befehlsabruf",
		"address 0x%08x length %d %v":          "Adresse 0x%08x Länge %d %v",
		"malformed image":                      "fehlerhaftes Programmabbild",
		"unsupported image format":             "nicht unterstütztes Abbildformat",
		"segment %d at 0x%08x %v":              "Segment %d bei 0x%08x %v",
		"unknown dump style":                   "unbekannter Ausgabestil",
		"run requires a termination predicate": "Ausführung benötigt ein Abbruchprädikat",
		"predicate":                            "Prädikat",
		"pc 0x%08x %v":                         "PC 0x%08x %v",
	},
}

func newMessages() (cat *catalog.Builder) {
	cat = catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))

	for tag, messages := range _messages {
		for key, msg := range messages {
			err := cat.SetString(tag, key, msg)
			if err != nil {
				panic(err)
			}
		}
	}

	return
}
