package negotiate

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents DoS through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// languageTag is a parsed Accept-Language entry with its quality value.
type languageTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage picks the best-matching language code from available
// given an Accept-Language header. Matching is case-insensitive, honors
// q-values, strips regions from header entries ("fr-CH" matches "fr"), and
// treats a wildcard entry as an explicit request for the fallback. Returns
// fallback when the header is empty or nothing matches.
//
// Example header: "fr-CH,fr;q=0.9,en;q=0.8"
// Available: ["en", "fr", "de"] → "fr"
func ParseAcceptLanguage(header string, available []string, fallback string) string {
	if header == "" || len(available) == 0 {
		return fallback
	}

	supported := make(map[string]string, len(available))
	for _, lang := range available {
		supported[normalizeTag(lang)] = lang
	}

	for _, tag := range parseLanguageTags(header) {
		if tag.tag == "*" {
			return fallback
		}
		if lang, ok := supported[baseOf(tag.tag)]; ok {
			return lang
		}
	}

	return fallback
}

// parseLanguageTags splits the header into tags ordered by descending
// quality, preserving header order for equal weights. Entries with q=0
// ("not acceptable") are dropped.
func parseLanguageTags(header string) []languageTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []languageTag

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = normalizeTag(langPart)
		if langPart == "" {
			continue
		}

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if quality == 0 {
			continue
		}

		tags = append(tags, languageTag{tag: langPart, quality: quality})
	}

	slices.SortStableFunc(tags, func(a, b languageTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// baseOf strips the region from a language tag ("fr-ch" → "fr").
func baseOf(tag string) string {
	base, _, _ := strings.Cut(tag, "-")
	return base
}
