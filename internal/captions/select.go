package captions

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	"singsync/internal/media"
	"singsync/internal/script"
)

// track is one caption file with its decoded language information.
type track struct {
	path string
	lang string
	auto bool
}

// autoMarkers are filename tag segments marking auto-generated tracks.
var autoMarkers = map[string]struct{}{
	"auto": {},
	"asr":  {},
}

// latinLanguages is the whitelist of caption languages accepted when the
// expected script is Latin.
var latinLanguages = map[string]struct{}{
	"en": {}, "es": {}, "fr": {}, "de": {}, "it": {}, "pt": {},
	"nl": {}, "sv": {}, "no": {}, "da": {}, "fi": {}, "pl": {},
	"tr": {}, "id": {}, "ms": {}, "vi": {}, "tl": {}, "ro": {},
}

// cyrillicLanguages is the corresponding whitelist for Cyrillic.
var cyrillicLanguages = map[string]struct{}{
	"ru": {}, "uk": {}, "bg": {}, "sr": {}, "mk": {}, "be": {}, "kk": {},
}

// languagePriority ranks caption languages once script filtering is done.
// Unlisted languages score zero and fall back to lexical filename order.
var languagePriority = map[string]int{
	"en": 400,
	"ko": 300,
	"ja": 200,
	"fr": 100,
}

// parseTrack decodes a caption filename into its track descriptor. The
// filename tag carries the language and optionally an auto-generation marker
// ("captions.en.asr.vtt").
func parseTrack(path string) track {
	t := track{path: path}
	tag := media.CaptionLanguageTag(path)
	if tag == "" {
		return t
	}
	var languageParts []string
	for _, part := range strings.Split(tag, ".") {
		if _, ok := autoMarkers[strings.ToLower(part)]; ok {
			t.auto = true
			continue
		}
		languageParts = append(languageParts, part)
	}
	t.lang = baseLanguage(strings.Join(languageParts, "-"))
	return t
}

// baseLanguage reduces a BCP 47 tag to its base language ("en-US" to "en").
func baseLanguage(tag string) string {
	parsed, err := language.Parse(tag)
	if err != nil {
		return strings.ToLower(tag)
	}
	base, _ := parsed.Base()
	return base.String()
}

// languageCompatible reports whether a caption language is plausible for the
// expected script. Korean and Japanese songs routinely ship English caption
// tracks, so English passes for those too.
func languageCompatible(lang string, expected script.Type) bool {
	switch expected {
	case script.Latin:
		_, ok := latinLanguages[lang]
		return ok
	case script.Korean:
		return lang == "ko" || lang == "en"
	case script.Japanese:
		return lang == "ja" || lang == "en"
	case script.Cyrillic:
		_, ok := cyrillicLanguages[lang]
		return ok
	default:
		return true
	}
}

// selectTrack picks the best caption file for the expected script. Files in
// a compatible language are preferred, but an all-incompatible set falls
// back to every file rather than giving up before the content check.
func selectTrack(paths []string, expected script.Type) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}
	tracks := make([]track, 0, len(paths))
	for _, path := range paths {
		tracks = append(tracks, parseTrack(path))
	}

	filtered := make([]track, 0, len(tracks))
	for _, t := range tracks {
		if languageCompatible(t.lang, expected) {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 {
		filtered = tracks
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if a.auto != b.auto {
			return !a.auto
		}
		if pa, pb := languagePriority[a.lang], languagePriority[b.lang]; pa != pb {
			return pa > pb
		}
		return a.path < b.path
	})
	return filtered[0].path, true
}
