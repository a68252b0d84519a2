package engine

import (
	"github.com/erin-james/ai-query-interface/internal/model"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// nameMatchCutoff is the minimum similarity (0 to 1) for a fuzzy customer
// name match to be accepted.
const nameMatchCutoff = 0.6

// matchCustomer resolves an approximate name string to a customer ID by
// comparing it against every customer's full name with bigram Dice
// similarity, ignoring case. Only the single best candidate is
// considered, and only if it clears the cutoff; ties between rows with
// identical full names resolve to the first row in table order. The
// metric lives behind this one function so it can be swapped without
// touching callers.
func matchCustomer(name string, customers []model.Customer) (string, bool) {
	metric := metrics.NewSorensenDice()
	metric.CaseSensitive = false

	bestName := ""
	bestScore := 0.0
	for _, c := range customers {
		score := strutil.Similarity(name, c.FullName(), metric)
		if score > bestScore {
			bestScore = score
			bestName = c.FullName()
		}
	}
	if bestScore < nameMatchCutoff {
		return "", false
	}

	for _, c := range customers {
		if c.FullName() == bestName {
			return c.CID, true
		}
	}
	return "", false
}
