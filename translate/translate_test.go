package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNewPrinter(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		locales []string
		key     string
		args    []any
		text    string
	}){
		{nil, "address out of bounds", nil, "address out of bounds"},
		{[]string{"en-US"}, "segment %d at 0x%08x %v", []any{1, uint32(0x8000_0000), "x"}, "segment 1 at 0x80000000 x"},
		{[]string{"fr-FR"}, "malformed image", nil, "malformed image"},
		{[]string{"de-DE"}, "malformed image", nil, "fehlerhaftes Programmabbild"},
		{[]string{"de-AT", "en-US"}, "pc 0x%08x %v", []any{uint32(0x8000_0010), "fetch"}, "PC 0x80000010 fetch"},
		{[]string{"de-DE"}, "not in the catalog %d", []any{7}, "not in the catalog 7"},
	}

	for _, entry := range table {
		printer := NewPrinter(entry.locales...)
		assert.Equal(entry.text, printer.Sprintf(entry.key, entry.args...), entry.locales)
	}
}

func TestMessages(t *testing.T) {
	assert := assert.New(t)

	assert.Contains(Messages.Languages(), language.German)

	// Every translation keeps the verbs of its key.
	for _, messages := range _messages {
		for key, msg := range messages {
			assert.Equal(verbs(key), verbs(msg), key)
		}
	}
}

func verbs(format string) (out []string) {
	for n := 0; n < len(format); n++ {
		if format[n] != '%' {
			continue
		}
		end := n + 1
		for end < len(format) && !('a' <= format[end] && format[end] <= 'z') {
			end++
		}
		if end < len(format) {
			out = append(out, format[n:end+1])
		}
		n = end
	}
	return
}
