package usecase

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// defaultMaxFeatures caps the vocabulary so memory stays bounded
// regardless of catalog size.
const defaultMaxFeatures = 1000

// wordRegex extracts word tokens of two or more characters. Domain text is
// short, so no stop words are removed: even otherwise-common words carry
// discriminative signal here.
var wordRegex = regexp.MustCompile(`[a-z0-9_]{2,}`)

// Vectorizer converts a document corpus into L2-normalized TF-IDF weight
// vectors over unigrams and bigrams. Fitting is deterministic: vocabulary
// and weights depend only on the corpus text.
type Vectorizer struct {
	maxFeatures int
	vocabulary  map[string]int
	idf         []float64
}

// NewVectorizer creates a vectorizer with the given vocabulary cap.
// Non-positive values fall back to the default cap.
func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = defaultMaxFeatures
	}
	return &Vectorizer{maxFeatures: maxFeatures}
}

// VocabularySize returns the number of terms selected during fitting.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// FitTransform builds the vocabulary and IDF weights from the corpus and
// returns one weight vector per document, index-aligned with the input.
func (v *Vectorizer) FitTransform(docs []string) [][]float64 {
	termCounts := make(map[string]int) // corpus-wide term frequency
	docFreq := make(map[string]int)    // number of docs containing the term
	tokenized := make([][]string, len(docs))

	for i, doc := range docs {
		terms := ngrams(doc)
		tokenized[i] = terms
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			termCounts[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	v.buildVocabulary(termCounts, docFreq, len(docs))

	vectors := make([][]float64, len(docs))
	for i, terms := range tokenized {
		vectors[i] = v.transform(terms)
	}
	return vectors
}

// buildVocabulary selects up to maxFeatures terms by corpus frequency
// (ties broken alphabetically), assigns column indices in alphabetical
// order, and computes smoothed IDF weights.
func (v *Vectorizer) buildVocabulary(termCounts map[string]int, docFreq map[string]int, totalDocs int) {
	terms := make([]string, 0, len(termCounts))
	for term := range termCounts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termCounts[terms[i]] != termCounts[terms[j]] {
			return termCounts[terms[i]] > termCounts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(totalDocs)
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF keeps weights strictly positive, so every vector
		// entry stays non-negative and cosine values stay in [0,1].
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
}

// transform maps one tokenized document onto an L2-normalized TF-IDF vector.
func (v *Vectorizer) transform(terms []string) []float64 {
	vec := make([]float64, len(v.vocabulary))
	for _, term := range terms {
		if idx, ok := v.vocabulary[term]; ok {
			vec[idx] += v.idf[idx]
		}
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// ngrams tokenizes a document into unigrams plus adjacent-pair bigrams.
func ngrams(doc string) []string {
	words := wordRegex.FindAllString(strings.ToLower(doc), -1)
	if len(words) == 0 {
		return nil
	}
	terms := make([]string, 0, 2*len(words)-1)
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}
