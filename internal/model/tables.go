package model

// The four datasets share the column names of the source CSV files. Every
// query routine depends on these fields verbatim, so they are not renamed
// to friendlier Go names.

// Customer represents one row of Customers.csv
type Customer struct {
	CID    string `json:"CID"`
	FNAME1 string `json:"FNAME1"`
	LNAME  string `json:"LNAME"`
	CITY   string `json:"CITY"`
}

// FullName joins the first and last name with a single space. Missing
// parts stay empty rather than being dropped, so "John " and " Smith"
// are possible results.
func (c Customer) FullName() string {
	return c.FNAME1 + " " + c.LNAME
}

// Order represents one row of Inventory.csv, linking an order to the
// customer who placed it
type Order struct {
	IID string `json:"IID"`
	CID string `json:"CID"`
}

// OrderDetail represents one row of Detail.csv: a quantity of one
// pricelist item within one order
type OrderDetail struct {
	IID              string `json:"IID"`
	PriceTableItemID string `json:"price_table_item_id"`
	ItemCount        int    `json:"item_count"`
}

// PriceItem represents one row of Pricelist.csv. A BasePrice of exactly 0
// means "unpriced"; a Stock of 0 means out of stock.
type PriceItem struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"baseprice"`
	Stock     int     `json:"stock"`
}
