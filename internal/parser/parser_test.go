package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSynonyms(t *testing.T) {
	tests := []struct {
		question string
		intent   Intent
	}{
		{"How many orders are there?", IntentCountOrders},
		{"what were the total orders last quarter", IntentCountOrders},
		{"show me the total revenue", IntentTotalRevenue},
		{"who are the repeat buyers", IntentMultiItemCust},
		{"how many items do we carry", IntentTotalItems},
		{"what is the average price", IntentAveragePrice},
		{"what is the most expensive item", IntentMostExpensiveItem},
		{"cheapest item please", IntentCheapestItem},
		{"which items are out of stock", IntentOutOfStockItems},
		{"what is currently stocked", IntentInStockItems},
		{"list the unsold items", IntentNeverOrderedItems},
		{"what is the best selling item", IntentMostPopularItem},
		{"what is the least popular item", IntentLeastPopularItem},
		{"who is the top customer", IntentTopCustomer},
		{"who is the least active customer", IntentBottomCustomer},
		{"orders in last month", IntentRecentOrders},
		{"orders in past year", IntentYearlyOrders},
		{"orders in last week", IntentWeeklyOrders},
		{"orders today", IntentDailyOrders},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			q := Parse(tt.question)
			assert.Equal(t, tt.intent, q.Intent)
			assert.Empty(t, q.Params)
		})
	}
}

func TestParseSynonymOrderIsTheTieBreak(t *testing.T) {
	// Contains a top_customer phrase and a recent_orders phrase; the
	// earlier table entry must win even though the later phrase appears
	// first in the question.
	q := Parse("recent purchases by our top customer")
	assert.Equal(t, IntentTopCustomer, q.Intent)
}

func TestParseFilterByCity(t *testing.T) {
	q := Parse("customers in Raleigh")
	require.Equal(t, IntentFilterByCity, q.Intent)
	assert.Equal(t, "raleigh", q.Params["city"])

	q = Parse("show orders from new york")
	require.Equal(t, IntentFilterByCity, q.Intent)
	assert.Equal(t, "new york", q.Params["city"])
}

func TestParsePriceFilter(t *testing.T) {
	q := Parse("items over $50")
	require.Equal(t, IntentPriceFilter, q.Intent)
	assert.Equal(t, "50", q.Params["threshold"])
	assert.Equal(t, "above", q.Params["direction"])

	q = Parse("show me products greater than 120")
	require.Equal(t, IntentPriceFilter, q.Intent)
	assert.Equal(t, "120", q.Params["threshold"])
	assert.Equal(t, "above", q.Params["direction"])

	q = Parse("things under $15")
	require.Equal(t, IntentPriceFilter, q.Intent)
	assert.Equal(t, "15", q.Params["threshold"])
	assert.Equal(t, "below", q.Params["direction"])
}

func TestParseFuzzyProductMatch(t *testing.T) {
	q := Parse("orders with something like widget")
	require.Equal(t, IntentFuzzyProductMatch, q.Intent)
	assert.Equal(t, "something like widget", q.Params["product_hint"])
}

func TestParseCustomerOrders(t *testing.T) {
	q := Parse("what did john smith order")
	require.Equal(t, IntentCustomerOrders, q.Intent)
	assert.Equal(t, "john smith", q.Params["customer_name"])

	q = Parse("show me what acme corp purchased")
	require.Equal(t, IntentCustomerOrders, q.Intent)
	assert.Equal(t, "acme corp", q.Params["customer_name"])
}

func TestParseMetaQueries(t *testing.T) {
	assert.Equal(t, IntentTableSchema, Parse("what columns does the data have").Intent)
	assert.Equal(t, IntentTableSchema, Parse("describe the schema").Intent)
	assert.Equal(t, IntentRowCount, Parse("how many rows are there").Intent)
	assert.Equal(t, IntentRowCount, Parse("give me the row count").Intent)
}

func TestParseFallbackCountOrders(t *testing.T) {
	q := Parse("can you count the orders placed")
	assert.Equal(t, IntentCountOrders, q.Intent)
}

func TestParseFallbackAveragePrice(t *testing.T) {
	q := Parse("what is the average across all prices")
	assert.Equal(t, IntentAveragePrice, q.Intent)
}

func TestParseFallbackItemPrice(t *testing.T) {
	q := Parse("price of widgets")
	require.Equal(t, IntentItemPrice, q.Intent)
	assert.Equal(t, "widgets", q.Params["item_name"])
}

func TestParseUnknown(t *testing.T) {
	q := Parse("asdf qwerty zxcv")
	assert.Equal(t, IntentUnknown, q.Intent)
	assert.Empty(t, q.Params)
}

func TestParseFallbackCustomerName(t *testing.T) {
	// The name keeps its capitalization even though matching layers see
	// the question lowercased; entity recognition needs it intact.
	q := Parse("tell me about Alice Smith")
	assert.Equal(t, IntentOrdersByCustomer, q.Intent)
	assert.Equal(t, "Alice Smith", q.Params["cid"])
}

func TestParseNormalizesInput(t *testing.T) {
	q := Parse("   HOW MANY ORDERS?   ")
	assert.Equal(t, IntentCountOrders, q.Intent)
}

func TestPatternOrderWinsOverLaterPatterns(t *testing.T) {
	// Matches both the location pattern and the fuzzy-product pattern;
	// the earlier location pattern must claim it.
	q := Parse("orders from boston")
	assert.Equal(t, IntentFilterByCity, q.Intent)
	assert.Equal(t, "boston", q.Params["city"])
}

func TestBaseForm(t *testing.T) {
	assert.Equal(t, "count", baseForm("counting"))
	assert.Equal(t, "count", baseForm("counted"))
	assert.Equal(t, "count", baseForm("counts"))
	assert.Equal(t, "mean", baseForm("means"))
	assert.Equal(t, "average", baseForm("averages"))
	assert.Equal(t, "tally", baseForm("tallied"))
	assert.Equal(t, "guess", baseForm("guess"))
}

func TestParseFallbackAveragePluralPhrasing(t *testing.T) {
	q := Parse("what are the averages of prices")
	assert.Equal(t, IntentAveragePrice, q.Intent)
}
