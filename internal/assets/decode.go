package assets

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ============================================================
// Legacy text decoding
// ============================================================

type candidate struct {
	name string
	enc  encoding.Encoding
}

// candidates перебираются по порядку; при равенстве побеждает ранний.
var candidates = []candidate{
	{"utf-8", unicode.UTF8},
	{"cp437", charmap.CodePage437},
	{"cp850", charmap.CodePage850},
	{"windows-1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

// Decode декодирует data первой кодировкой без символов замены, иначе той,
// где их меньше всего. Валидный UTF-8 возвращается как есть, даже если
// в нем есть U+FFFD.
func Decode(data []byte) (string, string) {
	if utf8.Valid(data) {
		return string(data), "utf-8"
	}
	bestText, bestName, bestScore := "", "", -1
	for _, c := range candidates {
		out, err := c.enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		text := string(out)
		score := strings.Count(text, "\uFFFD")
		if score == 0 {
			return text, c.name
		}
		if bestScore < 0 || score < bestScore {
			bestText, bestName, bestScore = text, c.name, score
		}
	}
	if bestScore < 0 {
		return string(data), "binary"
	}
	return bestText, bestName
}
