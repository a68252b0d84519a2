package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/erin-james/ai-query-interface/internal/model"
	"github.com/erin-james/ai-query-interface/internal/store"
)

func countOrders(_ map[string]string, s *store.Store) string {
	seen := make(map[string]struct{}, len(s.Orders))
	for _, o := range s.Orders {
		seen[o.IID] = struct{}{}
	}
	return fmt.Sprintf("There are %d total orders.", len(seen))
}

func totalItems(_ map[string]string, s *store.Store) string {
	seen := make(map[string]struct{}, len(s.PriceList))
	for _, p := range s.PriceList {
		seen[p.ItemID] = struct{}{}
	}
	return fmt.Sprintf("There are %d unique items in the pricelist.", len(seen))
}

func averagePrice(_ map[string]string, s *store.Store) string {
	var sum float64
	var n int
	for _, p := range s.PriceList {
		if p.BasePrice > 0 {
			sum += p.BasePrice
			n++
		}
	}
	if n == 0 {
		return "No priced items are listed."
	}
	return fmt.Sprintf("The average price of listed items is $%.2f.", sum/float64(n))
}

// mostExpensiveItem takes the maximum over the whole pricelist without
// excluding zero-priced rows, while cheapestItem does exclude them. The
// asymmetry is intentional behavior parity; a zero price can never win
// the maximum on real data anyway.
func mostExpensiveItem(_ map[string]string, s *store.Store) string {
	var best *model.PriceItem
	for i := range s.PriceList {
		if best == nil || s.PriceList[i].BasePrice > best.BasePrice {
			best = &s.PriceList[i]
		}
	}
	if best == nil {
		return "No priced items are listed."
	}
	return fmt.Sprintf("The most expensive item is:\n%s — $%.2f", best.Name, best.BasePrice)
}

func cheapestItem(_ map[string]string, s *store.Store) string {
	var best *model.PriceItem
	for i := range s.PriceList {
		p := &s.PriceList[i]
		if p.BasePrice <= 0 {
			continue
		}
		if best == nil || p.BasePrice < best.BasePrice {
			best = p
		}
	}
	if best == nil {
		return "No priced items are listed."
	}
	return fmt.Sprintf("The cheapest item is:\n%s — $%.2f", best.Name, best.BasePrice)
}

func outOfStockItems(_ map[string]string, s *store.Store) string {
	var names []string
	for _, p := range s.PriceList {
		if p.Stock == 0 {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return "All items are currently in stock."
	}
	return "Out of stock items:\n" + strings.Join(names, "\n")
}

func inStockItems(_ map[string]string, s *store.Store) string {
	var names []string
	for _, p := range s.PriceList {
		if p.Stock > 0 {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return "No items are currently in stock."
	}
	return "In stock items:\n" + strings.Join(names, "\n")
}

func neverOrderedItems(_ map[string]string, s *store.Store) string {
	ordered := make(map[string]struct{}, len(s.Details))
	for _, d := range s.Details {
		ordered[d.PriceTableItemID] = struct{}{}
	}
	var names []string
	for _, p := range s.PriceList {
		if _, ok := ordered[p.ItemID]; !ok {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return "All items have been ordered at least once."
	}
	return "Items never ordered:\n" + strings.Join(names, "\n")
}

// unitsByItem sums ordered quantities per pricelist item id.
func unitsByItem(details []model.OrderDetail) map[string]int {
	totals := make(map[string]int)
	for _, d := range details {
		totals[d.PriceTableItemID] += d.ItemCount
	}
	return totals
}

// extremeItem returns the item id with the largest (or smallest) unit
// total. Ties resolve to the smallest item id, matching a scan over the
// groups in sorted key order.
func extremeItem(totals map[string]int, largest bool) (string, int, bool) {
	if len(totals) == 0 {
		return "", 0, false
	}
	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	bestID := ids[0]
	for _, id := range ids[1:] {
		if largest && totals[id] > totals[bestID] {
			bestID = id
		} else if !largest && totals[id] < totals[bestID] {
			bestID = id
		}
	}
	return bestID, totals[bestID], true
}

func mostPopularItem(_ map[string]string, s *store.Store) string {
	id, units, ok := extremeItem(unitsByItem(s.Details), true)
	if !ok {
		return "No order details are recorded."
	}
	item, found := s.FindPriceItem(id)
	if !found {
		return "No pricelist entry matches the most popular item."
	}
	return fmt.Sprintf("The most popular item is:\n%s — %d units sold", item.Name, units)
}

func leastPopularItem(_ map[string]string, s *store.Store) string {
	id, units, ok := extremeItem(unitsByItem(s.Details), false)
	if !ok {
		return "No order details are recorded."
	}
	item, found := s.FindPriceItem(id)
	if !found {
		return "No pricelist entry matches the least popular item."
	}
	return fmt.Sprintf("The least popular item is:\n%s — %d units sold", item.Name, units)
}

// customerByOrderCount returns the CID with the most (or fewest) order
// rows (raw row count, not distinct order ids). Ties resolve to the CID
// that appears first in table order.
func customerByOrderCount(orders []model.Order, most bool) (string, bool) {
	counts := make(map[string]int)
	var firstSeen []string
	for _, o := range orders {
		if _, ok := counts[o.CID]; !ok {
			firstSeen = append(firstSeen, o.CID)
		}
		counts[o.CID]++
	}
	if len(firstSeen) == 0 {
		return "", false
	}
	best := firstSeen[0]
	for _, cid := range firstSeen[1:] {
		if most && counts[cid] > counts[best] {
			best = cid
		} else if !most && counts[cid] < counts[best] {
			best = cid
		}
	}
	return best, true
}

func topCustomer(_ map[string]string, s *store.Store) string {
	cid, ok := customerByOrderCount(s.Orders, true)
	if !ok {
		return "No orders are recorded."
	}
	customer, found := s.FindCustomer(cid)
	if !found {
		return "No customer record matches the top customer."
	}
	return fmt.Sprintf("The top customer is:\n%s — most orders placed", customer.FullName())
}

func bottomCustomer(_ map[string]string, s *store.Store) string {
	cid, ok := customerByOrderCount(s.Orders, false)
	if !ok {
		return "No orders are recorded."
	}
	customer, found := s.FindCustomer(cid)
	if !found {
		return "No customer record matches the bottom customer."
	}
	return fmt.Sprintf("The customer with the fewest orders is:\n%s", customer.FullName())
}

func itemPrice(params map[string]string, s *store.Store) string {
	itemName := params["item_name"]
	needle := strings.ToLower(itemName)

	var lines []string
	for _, p := range s.PriceList {
		if p.BasePrice > 0 && strings.Contains(strings.ToLower(p.Name), needle) {
			lines = append(lines, fmt.Sprintf("%-25s $%6.2f", p.Name, p.BasePrice))
		}
	}
	if len(lines) == 0 {
		return fmt.Sprintf("No priced item found matching '%s'.", itemName)
	}
	return fmt.Sprintf("Prices for items matching '%s':\n%s", itemName, strings.Join(lines, "\n"))
}

func ordersByCustomer(params map[string]string, s *store.Store) string {
	cidOrName := params["cid"]
	cid, ok := matchCustomer(cidOrName, s.Customers)
	if !ok {
		return fmt.Sprintf("No customer found matching '%s'.", cidOrName)
	}

	orders := s.OrdersByCustomer(cid)
	if len(orders) == 0 {
		return fmt.Sprintf("Customer '%s' has no orders.", cidOrName)
	}
	orderIDs := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		orderIDs[o.IID] = struct{}{}
	}

	// Deduplicate identical detail rows, then total quantity per item
	// name. Details referencing an id absent from the pricelist are
	// dropped, the left-join-with-misses behavior.
	type detailKey struct {
		iid, itemID string
		count       int
	}
	seen := make(map[detailKey]struct{})
	quantities := make(map[string]int)
	for _, d := range s.Details {
		if _, ok := orderIDs[d.IID]; !ok {
			continue
		}
		key := detailKey{d.IID, d.PriceTableItemID, d.ItemCount}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if item, found := s.FindPriceItem(d.PriceTableItemID); found {
			quantities[item.Name] += d.ItemCount
		}
	}
	if len(quantities) == 0 {
		return fmt.Sprintf("Customer '%s' has no orders.", cidOrName)
	}

	names := make([]string, 0, len(quantities))
	for name := range quantities {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%d× %s", quantities[name], name))
	}
	return fmt.Sprintf("Customer '%s' ordered:\n%s", cidOrName, strings.Join(lines, "\n"))
}

func priceFilter(params map[string]string, s *store.Store) string {
	threshold, err := strconv.ParseFloat(params["threshold"], 64)
	if err != nil {
		return UnknownAnswer
	}
	direction := params["direction"]

	// Filter and sort items by price, excluding zero-priced entries
	var matched []model.PriceItem
	for _, p := range s.PriceList {
		if p.BasePrice <= 0 {
			continue
		}
		if direction == "above" && p.BasePrice > threshold {
			matched = append(matched, p)
		} else if direction == "below" && p.BasePrice < threshold {
			matched = append(matched, p)
		}
	}
	if direction == "above" {
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].BasePrice > matched[j].BasePrice })
	} else {
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].BasePrice < matched[j].BasePrice })
	}

	if len(matched) == 0 {
		return fmt.Sprintf("No items found with price %s $%.2f.", direction, threshold)
	}

	// Format output with aligned columns
	header := fmt.Sprintf("%-30s %10s", "Item Name", "Price")
	divider := strings.Repeat("-", 42)
	rows := make([]string, 0, len(matched))
	for _, p := range matched {
		rows = append(rows, fmt.Sprintf("%-30s $%9.2f", p.Name, p.BasePrice))
	}
	return fmt.Sprintf("Items priced %s $%.2f:\n\n%s\n%s\n%s",
		direction, threshold, header, divider, strings.Join(rows, "\n"))
}

func filterByCity(params map[string]string, s *store.Store) string {
	city := params["city"]
	needle := strings.ToLower(city)

	var names []string
	for _, c := range s.Customers {
		if strings.Contains(strings.ToLower(c.CITY), needle) {
			names = append(names, c.FullName())
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("No customer found matching '%s'.", city)
	}
	return fmt.Sprintf("Customers in %s:\n%s", titleCase(city), strings.Join(names, "\n"))
}

// titleCase capitalizes each space-separated word; the classifier hands
// the city over lowercased, but the header reads better as "Raleigh".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
