// Package language identifies the language of transcript text and maps
// language codes to human-readable display names.
//
// Detection is statistical (trigram-based) over the transcript text,
// not the audio, so very short or empty transcripts may fail.
package language

import (
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"
)

// displayNames maps ISO 639-1 codes to the display names used in
// prompts and responses. Codes outside this set fall back to the raw
// code.
var displayNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"ca": "Catalan",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
}

// Detect runs statistical language identification over text and
// returns an ISO 639-1 code. Empty or unrecognizable text is an error.
func Detect(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("language: cannot detect language of empty text")
	}
	info := whatlanggo.Detect(text)
	code := whatlanggo.LangToStringShort(info.Lang)
	if code == "" {
		return "", fmt.Errorf("language: detection failed for text %q", truncate(text, 80))
	}
	return code, nil
}

// DisplayName maps an ISO 639-1 code to its display name. Unmapped
// codes are returned unchanged.
func DisplayName(code string) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	return code
}

// Supported returns the codes with a display-name mapping.
func Supported() []string {
	codes := make([]string, 0, len(displayNames))
	for code := range displayNames {
		codes = append(codes, code)
	}
	return codes
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
