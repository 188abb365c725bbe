package sanitizer

import "strings"

func NormalizeTitle(title string) string {
	return strings.TrimSpace(title)
}

func NormalizeLocation(location string) string {
	return strings.TrimSpace(location)
}

// NormalizeText trims free text but keeps its inner spacing and line breaks.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}

// NormalizeID trims identifiers supplied by clients.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}
