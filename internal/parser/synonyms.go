package parser

// synonymEntry binds one intent to the phrases that trigger it. Matching
// is unanchored substring containment over the lowercased question.
type synonymEntry struct {
	intent  Intent
	phrases []string
}

// intentSynonyms is evaluated top to bottom and the first entry with any
// matching phrase wins. A slice rather than a map: when two entries could
// match the same substring, source order is the tie-break, and that order
// is observable behavior.
var intentSynonyms = []synonymEntry{
	{IntentCountOrders, []string{"how many orders", "total orders", "number of orders"}},
	{IntentTotalRevenue, []string{"total revenue", "how much money", "total sales"}},
	{IntentMultiItemCust, []string{"more than one item", "ordered more than once", "repeat buyers"}},
	{IntentTotalItems, []string{"total items", "how many items", "number of products"}},
	{IntentAveragePrice, []string{"average price", "mean price", "typical cost"}},
	{IntentMostExpensiveItem, []string{"most expensive item", "highest price", "costliest item"}},
	{IntentCheapestItem, []string{"cheapest item", "lowest price", "least expensive item"}},
	{IntentOutOfStockItems, []string{"out of stock", "not available", "unavailable", "sold out"}},
	{IntentInStockItems, []string{"in stock", "available", "currently stocked"}},
	{IntentNeverOrderedItems, []string{"items never ordered", "products never ordered", "unsold items"}},
	{IntentMostPopularItem, []string{"most popular item", "best selling item", "top seller", "top item", "highest selling item", "most sold item"}},
	{IntentLeastPopularItem, []string{"least popular item", "worst selling item", "least ordered"}},
	{IntentTopCustomer, []string{"top customer", "customer with highest orders", "top buyer"}},
	{IntentBottomCustomer, []string{"bottom customer", "customer with lowest orders", "least active customer"}},
	{IntentRecentOrders, []string{"orders in last month", "orders in past month", "recent purchases"}},
	{IntentYearlyOrders, []string{"orders in last year", "orders in past year", "annual orders"}},
	{IntentWeeklyOrders, []string{"orders in last week", "orders in past week", "weekly purchases"}},
	{IntentDailyOrders, []string{"orders today", "orders in past day", "orders in last day", "today's orders"}},
}
