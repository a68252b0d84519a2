package parser

import (
	"regexp"
	"strings"
)

// extraction binds a compiled pattern to the Query it produces on match.
// The cascade is an ordered list: a question matching two patterns must
// resolve via the earlier one, so the order here is part of the contract
// and must not be changed.
type extraction struct {
	pattern *regexp.Regexp
	build   func(groups []string) Query
}

var extractions = []extraction{
	// Location-based queries (e.g., "customers in Raleigh")
	{
		regexp.MustCompile(`(?:customers|orders) (?:in|from) ([a-z\s]+)`),
		func(groups []string) Query {
			return withParams(IntentFilterByCity, map[string]string{"city": strings.TrimSpace(groups[1])})
		},
	},
	// Price filters (e.g., "items over $50")
	{
		regexp.MustCompile(`(?:items|products|things|orders).*?(?:over|above|greater than)\s*\$?(\d+)`),
		func(groups []string) Query {
			return withParams(IntentPriceFilter, map[string]string{"threshold": groups[1], "direction": "above"})
		},
	},
	{
		regexp.MustCompile(`(?:items|products|things|orders).*?(?:under|below|less than)\s*\$?(\d+)`),
		func(groups []string) Query {
			return withParams(IntentPriceFilter, map[string]string{"threshold": groups[1], "direction": "below"})
		},
	},
	// Fuzzy product matching (e.g., "orders with something like Widget")
	{
		regexp.MustCompile(`(?:orders|purchases).*?(?:like|similar to|containing|with) (.+)`),
		func(groups []string) Query {
			return withParams(IntentFuzzyProductMatch, map[string]string{"product_hint": strings.TrimSpace(groups[1])})
		},
	},
	// Customer-specific queries (e.g., "what did John Smith order")
	{
		regexp.MustCompile(`(?:what did|what has|show me what) (.+?) (?:order|buy|purchase)`),
		func(groups []string) Query {
			return withParams(IntentCustomerOrders, map[string]string{"customer_name": groups[1]})
		},
	},
}

// Parse classifies a raw question into exactly one Query. It never fails:
// anything unrecognized comes back as IntentUnknown. Layers are tried in
// strict order: synonym phrases, then the pattern cascade, then meta
// queries, then the linguistic fallback.
func Parse(question string) Query {
	q := strings.TrimSpace(strings.ToLower(question))

	// Synonym-based intent matching
	for _, entry := range intentSynonyms {
		for _, phrase := range entry.phrases {
			if strings.Contains(q, phrase) {
				return simple(entry.intent)
			}
		}
	}

	// Structural pattern extraction
	for _, ex := range extractions {
		if groups := ex.pattern.FindStringSubmatch(q); groups != nil {
			return ex.build(groups)
		}
	}

	// Meta queries
	if strings.Contains(q, "columns") || strings.Contains(q, "schema") {
		return simple(IntentTableSchema)
	}
	if strings.Contains(q, "how many rows") || strings.Contains(q, "row count") {
		return simple(IntentRowCount)
	}

	// Linguistic fallback parsing. The fallback gets the untouched
	// question as well: entity recognition keys on capitalization, which
	// the lowercase normalization above destroys.
	if query, ok := parseFallback(q, strings.TrimSpace(question)); ok {
		return query
	}

	// Fallback if no intent matched
	return simple(IntentUnknown)
}
