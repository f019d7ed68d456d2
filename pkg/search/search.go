// Package search ranks a bilingual Vietnamese/English food catalog
// against free-text queries. It is pure and synchronous: no I/O, no
// database access.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lia-dsgnr/calo-tracker/models"
)

// Search constraints.
const (
	MaxQueryLength = 50
	MinQueryLength = 2
	FuzzyMinLength = 5

	maxLevenshteinDistance = 1
)

// Scoring weights. Highest-priority match wins per candidate.
const (
	scoreExactPrefixVi = 100
	scoreExactPrefixEn = 90
	scoreContains      = 50
	scoreFuzzy         = 20
)

// Vietnamese letter to ASCII substitutions for accent-insensitive
// matching. One rune in, one rune out, so normalized offsets map back
// onto the original string.
var vietnameseMap = map[rune]rune{
	'à': 'a', 'á': 'a', 'ả': 'a', 'ã': 'a', 'ạ': 'a',
	'ă': 'a', 'ằ': 'a', 'ắ': 'a', 'ẳ': 'a', 'ẵ': 'a', 'ặ': 'a',
	'â': 'a', 'ầ': 'a', 'ấ': 'a', 'ẩ': 'a', 'ẫ': 'a', 'ậ': 'a',
	'đ': 'd',
	'è': 'e', 'é': 'e', 'ẻ': 'e', 'ẽ': 'e', 'ẹ': 'e',
	'ê': 'e', 'ề': 'e', 'ế': 'e', 'ể': 'e', 'ễ': 'e', 'ệ': 'e',
	'ì': 'i', 'í': 'i', 'ỉ': 'i', 'ĩ': 'i', 'ị': 'i',
	'ò': 'o', 'ó': 'o', 'ỏ': 'o', 'õ': 'o', 'ọ': 'o',
	'ô': 'o', 'ồ': 'o', 'ố': 'o', 'ổ': 'o', 'ỗ': 'o', 'ộ': 'o',
	'ơ': 'o', 'ờ': 'o', 'ớ': 'o', 'ở': 'o', 'ỡ': 'o', 'ợ': 'o',
	'ù': 'u', 'ú': 'u', 'ủ': 'u', 'ũ': 'u', 'ụ': 'u',
	'ư': 'u', 'ừ': 'u', 'ứ': 'u', 'ử': 'u', 'ữ': 'u', 'ự': 'u',
	'ỳ': 'y', 'ý': 'y', 'ỷ': 'y', 'ỹ': 'y', 'ỵ': 'y',
}

// NormalizeVietnamese lowercases text and strips Vietnamese diacritics.
// "Phở bò" becomes "pho bo".
func NormalizeVietnamese(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		r = unicode.ToLower(r)
		if mapped, ok := vietnameseMap[r]; ok {
			r = mapped
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeEnglish lowercases text and collapses hyphens, apostrophes
// and whitespace runs into single spaces. "broken-rice" becomes
// "broken rice".
func NormalizeEnglish(text string) string {
	lower := strings.ToLower(text)
	lower = strings.Map(func(r rune) rune {
		if r == '-' || r == '\'' {
			return ' '
		}
		return r
	}, lower)
	return strings.Join(strings.Fields(lower), " ")
}

// SanitizeQuery strips anything that is not a letter, digit or space,
// collapses whitespace, and truncates to MaxQueryLength runes.
func SanitizeQuery(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	collapsed := strings.Join(strings.Fields(b.String()), " ")
	runes := []rune(collapsed)
	if len(runes) > MaxQueryLength {
		runes = runes[:MaxQueryLength]
	}
	return string(runes)
}

// LevenshteinDistance is the minimum number of single-rune edits
// (insertion, deletion, substitution) turning a into b.
func LevenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for j := 0; j <= len(ra); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j <= len(ra); j++ {
			cost := 1
			if rb[i-1] == ra[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j-1]+cost, curr[j-1]+1, prev[j]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// MatchField reports which name matched a query.
type MatchField string

const (
	MatchVietnamese MatchField = "vi"
	MatchEnglish    MatchField = "en"
	MatchFuzzy      MatchField = "fuzzy"
)

// Result pairs a catalog entry with how it matched.
type Result struct {
	Food         models.FoodItem
	Score        int
	MatchedField MatchField
}

// scoreFood returns the score tier and matched field for one
// candidate, or score 0 when it does not match.
func scoreFood(food *models.FoodItem, normalizedQuery string, useFuzzy bool) (int, MatchField) {
	nameVi := NormalizeVietnamese(food.NameVi)
	nameEn := NormalizeEnglish(food.NameEn)

	if strings.Contains(nameVi, normalizedQuery) {
		if strings.HasPrefix(nameVi, normalizedQuery) {
			return scoreExactPrefixVi, MatchVietnamese
		}
		return scoreContains, MatchVietnamese
	}

	if strings.Contains(nameEn, normalizedQuery) {
		if strings.HasPrefix(nameEn, normalizedQuery) {
			return scoreExactPrefixEn, MatchEnglish
		}
		return scoreContains, MatchEnglish
	}

	if useFuzzy {
		if fuzzyMatchesAnyWord(nameVi, normalizedQuery) || fuzzyMatchesAnyWord(nameEn, normalizedQuery) {
			return scoreFuzzy, MatchFuzzy
		}
	}

	return 0, MatchVietnamese
}

// fuzzyMatchesAnyWord accepts a word when it is at least 3 runes, its
// length differs from the query by at most 2, and its edit distance to
// the query is within maxLevenshteinDistance.
func fuzzyMatchesAnyWord(name, query string) bool {
	queryLen := len([]rune(query))
	for _, word := range strings.Fields(name) {
		wordLen := len([]rune(word))
		if wordLen < 3 {
			continue
		}
		if diff := wordLen - queryLen; diff > 2 || diff < -2 {
			continue
		}
		if LevenshteinDistance(query, word) <= maxLevenshteinDistance {
			return true
		}
	}
	return false
}

// Rank scores the catalog against a query and returns matches sorted
// by score, highest first. Queries shorter than MinQueryLength return
// no results; fuzzy matching only engages at FuzzyMinLength.
func Rank(foods []models.FoodItem, query string) []Result {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < MinQueryLength {
		return nil
	}

	normalizedQuery := NormalizeVietnamese(trimmed)
	useFuzzy := len([]rune(trimmed)) >= FuzzyMinLength

	var results []Result
	for i := range foods {
		score, field := scoreFood(&foods[i], normalizedQuery, useFuzzy)
		if score > 0 {
			results = append(results, Result{Food: foods[i], Score: score, MatchedField: field})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Segment is one piece of a display string after highlighting.
type Segment struct {
	Text        string `json:"text"`
	Highlighted bool   `json:"highlighted"`
}

// Highlight splits text around the first case- and diacritic-
// insensitive occurrence of query. No occurrence yields the whole
// string as a single unhighlighted segment.
func Highlight(text, query string) []Segment {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []Segment{{Text: text}}
	}

	normalizedText := []rune(NormalizeVietnamese(text))
	normalizedQuery := []rune(NormalizeVietnamese(trimmed))

	idx := runeIndex(normalizedText, normalizedQuery)
	if idx < 0 {
		return []Segment{{Text: text}}
	}

	original := []rune(text)
	end := idx + len(normalizedQuery)

	var segments []Segment
	if idx > 0 {
		segments = append(segments, Segment{Text: string(original[:idx])})
	}
	segments = append(segments, Segment{Text: string(original[idx:end]), Highlighted: true})
	if end < len(original) {
		segments = append(segments, Segment{Text: string(original[end:])})
	}
	return segments
}

func runeIndex(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
