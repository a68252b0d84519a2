package parser

// Intent is a closed-set tag naming the kind of question asked.
type Intent string

const (
	IntentCountOrders       Intent = "count_orders"
	IntentTotalRevenue      Intent = "total_revenue"
	IntentMultiItemCust     Intent = "multi_item_customers"
	IntentTotalItems        Intent = "total_items"
	IntentAveragePrice      Intent = "average_price"
	IntentMostExpensiveItem Intent = "most_expensive_item"
	IntentCheapestItem      Intent = "cheapest_item"
	IntentOutOfStockItems   Intent = "out_of_stock_items"
	IntentInStockItems      Intent = "in_stock_items"
	IntentNeverOrderedItems Intent = "never_ordered_items"
	IntentMostPopularItem   Intent = "most_popular_item"
	IntentLeastPopularItem  Intent = "least_popular_item"
	IntentTopCustomer       Intent = "top_customer"
	IntentBottomCustomer    Intent = "bottom_customer"
	IntentRecentOrders      Intent = "recent_orders"
	IntentYearlyOrders      Intent = "yearly_orders"
	IntentWeeklyOrders      Intent = "weekly_orders"
	IntentDailyOrders       Intent = "daily_orders"
	IntentFilterByCity      Intent = "filter_by_city"
	IntentPriceFilter       Intent = "price_filter"
	IntentFuzzyProductMatch Intent = "fuzzy_product_match"
	IntentCustomerOrders    Intent = "customer_orders"
	IntentTableSchema       Intent = "table_schema"
	IntentRowCount          Intent = "row_count"
	IntentOrdersByCustomer  Intent = "orders_by_customer"
	IntentItemPrice         Intent = "item_price"
	IntentUnknown           Intent = "unknown"
)

// Query is the structured result of classifying one question: an intent
// tag plus zero or more named string parameters whose keys depend on the
// tag. Numeric parameters (price_filter's threshold) travel as their
// matched text and are parsed by the consumer.
type Query struct {
	Intent Intent
	Params map[string]string
}

func simple(intent Intent) Query {
	return Query{Intent: intent}
}

func withParams(intent Intent, params map[string]string) Query {
	return Query{Intent: intent, Params: params}
}
