package parser

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// The linguistic fallback is the softest layer of the classifier: a
// part-of-speech and named-entity pass over questions that matched no
// phrase or pattern. Tagger output is only consumed through the small
// helpers below, so the tagging library can be swapped without touching
// the branch logic.

// parseFallback runs the four fallback branches in order. q is the
// lowercased question used for token matching; raw keeps the caller's
// capitalization for the entity branch, since the recognizer misses
// names that have been folded to lowercase. The boolean is false when no
// branch fired or the tagger itself failed; the caller then reports the
// question as unrecognized.
func parseFallback(q, raw string) (Query, bool) {
	doc, err := prose.NewDocument(q)
	if err != nil {
		return Query{}, false
	}
	toks := doc.Tokens()

	// Count orders fallback
	if strings.Contains(q, "order") && hasBaseForm(toks, "count") {
		return simple(IntentCountOrders), true
	}

	// Average price fallback
	if strings.Contains(q, "price") && hasBaseForm(toks, "average", "mean") {
		return simple(IntentAveragePrice), true
	}

	// Named entity fallback (person or place/organization). The parameter
	// key is "cid" even though the value is a surface name; the dispatcher
	// resolves it to a real customer ID.
	if rawDoc, err := prose.NewDocument(raw); err == nil {
		for _, ent := range rawDoc.Entities() {
			if ent.Label == "PERSON" || ent.Label == "GPE" {
				return withParams(IntentOrdersByCustomer, map[string]string{"cid": ent.Text}), true
			}
		}
	}

	// Item price fallback (e.g., "price of widget")
	if hasSurfaceForm(toks, "price", "cost") {
		if phrase, ok := objectNounPhrase(toks); ok {
			return withParams(IntentItemPrice, map[string]string{"item_name": phrase}), true
		}
	}

	return Query{}, false
}

// hasSurfaceForm reports whether any token's text equals one of words.
func hasSurfaceForm(toks []prose.Token, words ...string) bool {
	for _, tok := range toks {
		for _, w := range words {
			if tok.Text == w {
				return true
			}
		}
	}
	return false
}

// hasBaseForm reports whether any token reduces to one of the given base
// forms ("counting" → "count", "means" → "mean").
func hasBaseForm(toks []prose.Token, bases ...string) bool {
	for _, tok := range toks {
		lemma := baseForm(tok.Text)
		for _, b := range bases {
			if lemma == b {
				return true
			}
		}
	}
	return false
}

// baseForm strips common inflection suffixes. Not a full lemmatizer; it
// only needs to normalize the handful of verbs the fallback branches key
// on.
func baseForm(word string) string {
	w := strings.ToLower(word)
	switch {
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		return strings.TrimSuffix(w, "ing")
	case strings.HasSuffix(w, "ied") && len(w) > 4:
		return strings.TrimSuffix(w, "ied") + "y"
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		return strings.TrimSuffix(w, "ed")
	// Only the bare "s" comes off, so "averages" reduces to "average",
	// not "averag". The "ss" guard keeps words like "guess" intact.
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) > 3:
		return strings.TrimSuffix(w, "s")
	}
	return w
}

// objectNounPhrase returns the first noun phrase in an object-like
// position: immediately after a preposition or a verb. This stands in
// for attribute/direct-object/prepositional-object detection without a
// full dependency parse.
func objectNounPhrase(toks []prose.Token) (string, bool) {
	i := 0
	for i < len(toks) {
		if !isNounPhraseTag(toks[i].Tag) {
			i++
			continue
		}
		start := i
		for i < len(toks) && isNounPhraseTag(toks[i].Tag) {
			i++
		}
		// The chunk must end in a noun
		end := i
		for end > start && !isNounTag(toks[end-1].Tag) {
			end--
		}
		if end == start {
			continue
		}
		if start > 0 {
			prev := toks[start-1].Tag
			if prev == "IN" || strings.HasPrefix(prev, "VB") {
				words := make([]string, 0, end-start)
				for _, tok := range toks[start:end] {
					words = append(words, tok.Text)
				}
				return strings.Join(words, " "), true
			}
		}
	}
	return "", false
}

func isNounPhraseTag(tag string) bool {
	switch tag {
	case "DT", "PRP$", "JJ", "JJR", "JJS", "CD":
		return true
	}
	return isNounTag(tag)
}

func isNounTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}
