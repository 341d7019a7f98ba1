package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultKeywordCount is the number of terms extracted per page.
	DefaultKeywordCount = 3

	// DefaultMaxNgram is the longest phrase considered, in words.
	DefaultMaxNgram = 2

	// FallbackKeyword names pages whose text yields no usable terms.
	FallbackKeyword = "content"

	// minTextLength is the shortest text worth analyzing, in characters.
	// Anything shorter gets the fallback keyword directly.
	minTextLength = 50

	// minKeywordLength drops cleaned candidates too short to be
	// meaningful in a file name.
	minKeywordLength = 3

	// fallbackWordCount is how many frequent words the fallback yields.
	fallbackWordCount = 5
)

// stopwords are excluded from candidates and the frequency fallback.
// German and English function words, matched after lowercasing.
var stopwords = map[string]bool{
	"der": true, "die": true, "das": true, "den": true, "dem": true,
	"des": true, "ein": true, "eine": true, "einer": true, "eines": true,
	"und": true, "oder": true, "aber": true, "mit": true, "für": true,
	"auf": true, "in": true, "zu": true, "von": true, "nach": true,
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "with": true, "for": true, "on": true, "to": true,
	"of": true,
	"ist": true, "sind": true, "wird": true, "werden": true,
	"kann": true, "könnte": true, "sollte": true,
	"is": true, "are": true, "was": true, "were": true,
	"can": true, "could": true, "should": true, "would": true,
}

var (
	// nonWordPattern strips everything except letters, digits,
	// underscores, whitespace, and hyphens. Diacritics are letters and
	// survive.
	nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)

	// wordPattern matches alphabetic runs of four letters or more, the
	// candidate pool for the frequency fallback.
	wordPattern = regexp.MustCompile(`\p{L}{4,}`)

	// sentencePattern splits text at sentence-ending punctuation so
	// phrases never span sentence boundaries.
	sentencePattern = regexp.MustCompile(`[.!?\n]+`)

	// tokenPattern matches word tokens inside a sentence.
	tokenPattern = regexp.MustCompile(`[\p{L}\p{N}-]+`)
)

// Extractor derives representative terms from page text. Safe for
// concurrent use.
type Extractor struct {
	numKeywords int
	maxNgram    int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithKeywordCount sets how many terms are extracted per page.
func WithKeywordCount(n int) Option {
	return func(e *Extractor) {
		e.numKeywords = n
	}
}

// WithMaxNgram sets the longest phrase considered, in words.
func WithMaxNgram(n int) Option {
	return func(e *Extractor) {
		e.maxNgram = n
	}
}

// NewExtractor creates an Extractor with the given options.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		numKeywords: DefaultKeywordCount,
		maxNgram:    DefaultMaxNgram,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns representative terms for the text, most significant
// first. Never returns an empty slice; text shorter than 50 characters
// yields exactly the fallback keyword.
func (e *Extractor) Extract(text string) []string {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTextLength {
		return []string{FallbackKeyword}
	}

	list := e.scoredCandidates(text)

	// Too few statistical candidates happens on short or repetitive
	// pages. Top up with plain frequent words.
	if len(list) < 2 {
		list = mergeUnique(list, e.frequentWords(text))
	}

	if len(list) > e.numKeywords {
		list = list[:e.numKeywords]
	}
	if len(list) == 0 {
		return []string{FallbackKeyword}
	}
	return list
}

// candidate is a scored word or phrase.
type candidate struct {
	phrase   string
	count    int
	firstPos int
	words    int
}

// score favors frequent phrases that appear early in the text, with a
// mild bonus for multi-word phrases since they carry more meaning.
func (c *candidate) score() float64 {
	positional := 1.0 + 1.0/float64(1+c.firstPos/10)
	phrase := 1.0 + 0.5*float64(c.words-1)
	return float64(c.count) * positional * phrase
}

// scoredCandidates runs the statistical extraction pass: collect word
// and phrase candidates per sentence, score them, deduplicate at the
// stem level, and return the cleaned top terms.
func (e *Extractor) scoredCandidates(text string) []string {
	normalized := norm.NFC.String(text)

	seen := make(map[string]*candidate)
	pos := 0
	for _, sentence := range sentencePattern.Split(normalized, -1) {
		tokens := tokenPattern.FindAllString(strings.ToLower(sentence), -1)
		for i := range tokens {
			for n := 1; n <= e.maxNgram && i+n <= len(tokens); n++ {
				window := tokens[i : i+n]
				if containsStopword(window) {
					continue
				}
				phrase := strings.Join(window, " ")
				if c, ok := seen[phrase]; ok {
					c.count++
				} else {
					seen[phrase] = &candidate{
						phrase:   phrase,
						count:    1,
						firstPos: pos + i,
						words:    n,
					}
				}
			}
		}
		pos += len(tokens)
	}

	ranked := make([]*candidate, 0, len(seen))
	for _, c := range seen {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := ranked[i].score(), ranked[j].score()
		if si != sj {
			return si > sj
		}
		return ranked[i].firstPos < ranked[j].firstPos
	})

	var list []string
	stems := make(map[string]bool)
	for _, c := range ranked {
		if len(list) >= e.numKeywords {
			break
		}
		cleaned := cleanKeyword(c.phrase)
		if utf8.RuneCountInString(cleaned) < minKeywordLength {
			continue
		}
		key := stemKey(cleaned)
		if stems[key] {
			continue
		}
		stems[key] = true
		list = append(list, cleaned)
	}
	return list
}

// frequentWords is the fallback: the most frequent stopword-filtered
// words of four letters or more, earliest first on ties.
func (e *Extractor) frequentWords(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(norm.NFC.String(text)), -1)

	counts := make(map[string]int)
	first := make(map[string]int)
	for i, w := range words {
		if stopwords[w] {
			continue
		}
		if _, ok := counts[w]; !ok {
			first[w] = i
		}
		counts[w]++
	}

	unique := make([]string, 0, len(counts))
	for w := range counts {
		unique = append(unique, w)
	}
	sort.Slice(unique, func(i, j int) bool {
		if counts[unique[i]] != counts[unique[j]] {
			return counts[unique[i]] > counts[unique[j]]
		}
		return first[unique[i]] < first[unique[j]]
	})

	if len(unique) > fallbackWordCount {
		unique = unique[:fallbackWordCount]
	}
	return unique
}

// cleanKeyword strips characters unsuitable for file names, collapses
// whitespace, and lowercases. Letters with diacritics are kept.
func cleanKeyword(keyword string) string {
	cleaned := nonWordPattern.ReplaceAllString(keyword, "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return strings.ToLower(cleaned)
}

// stemKey reduces a phrase to its stemmed form so inflected variants of
// the same term ("kurs", "kurse", "kursen") deduplicate.
func stemKey(phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		stemmed, err := snowball.Stem(w, "german", true)
		if err == nil && stemmed != "" {
			words[i] = stemmed
		}
	}
	return strings.Join(words, " ")
}

// containsStopword reports whether any word of the window is a stopword.
func containsStopword(window []string) bool {
	for _, w := range window {
		if stopwords[w] {
			return true
		}
	}
	return false
}

// mergeUnique appends extras to list, skipping duplicates.
func mergeUnique(list, extras []string) []string {
	present := make(map[string]bool, len(list))
	for _, s := range list {
		present[s] = true
	}
	for _, s := range extras {
		if !present[s] {
			present[s] = true
			list = append(list, s)
		}
	}
	return list
}
