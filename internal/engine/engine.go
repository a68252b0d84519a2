package engine

import (
	"github.com/erin-james/ai-query-interface/internal/parser"
	"github.com/erin-james/ai-query-interface/internal/store"
)

// UnknownAnswer is the fixed reply for unrecognized questions and for any
// intent without a registered handler.
const UnknownAnswer = "Sorry, I couldn't understand that question."

// handlerFunc computes the answer for one intent. Handlers are pure and
// read-only; every empty-result path yields a descriptive sentence rather
// than an error.
type handlerFunc func(params map[string]string, s *store.Store) string

// handlers is the intent registry. The classifier recognizes more intents
// than are registered here (total_revenue, multi_item_customers, the
// recent/yearly/weekly/daily order windows, fuzzy_product_match,
// customer_orders, table_schema, row_count); those fall through to
// UnknownAnswer. The registry makes that gap an explicit lookup miss
// instead of a silent missing branch.
var handlers = map[parser.Intent]handlerFunc{
	parser.IntentCountOrders:       countOrders,
	parser.IntentTotalItems:        totalItems,
	parser.IntentAveragePrice:      averagePrice,
	parser.IntentMostExpensiveItem: mostExpensiveItem,
	parser.IntentCheapestItem:      cheapestItem,
	parser.IntentOutOfStockItems:   outOfStockItems,
	parser.IntentInStockItems:      inStockItems,
	parser.IntentNeverOrderedItems: neverOrderedItems,
	parser.IntentMostPopularItem:   mostPopularItem,
	parser.IntentLeastPopularItem:  leastPopularItem,
	parser.IntentTopCustomer:       topCustomer,
	parser.IntentBottomCustomer:    bottomCustomer,
	parser.IntentItemPrice:         itemPrice,
	parser.IntentOrdersByCustomer:  ordersByCustomer,
	parser.IntentPriceFilter:       priceFilter,
	parser.IntentFilterByCity:      filterByCity,
}

// HasHandler reports whether an intent has a registered dispatcher branch.
func HasHandler(intent parser.Intent) bool {
	_, ok := handlers[intent]
	return ok
}

// Answer dispatches a classified query against the store and returns the
// formatted answer text.
func Answer(q parser.Query, s *store.Store) string {
	h, ok := handlers[q.Intent]
	if !ok {
		return UnknownAnswer
	}
	return h(q.Params, s)
}
