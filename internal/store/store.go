package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erin-james/ai-query-interface/internal/model"
)

// Store is the immutable in-memory snapshot of the four datasets. It is
// populated once at startup and never written again, so concurrent
// requests may read it without locking.
type Store struct {
	Customers []model.Customer
	Orders    []model.Order
	Details   []model.OrderDetail
	PriceList []model.PriceItem
}

// Dataset file names inside the data directory.
const (
	customersFile = "Customers.csv"
	inventoryFile = "Inventory.csv"
	detailFile    = "Detail.csv"
	pricelistFile = "Pricelist.csv"
)

// Load reads the four CSV datasets from dir into a new Store. A missing
// file or a missing required column is an error; data loading happens
// once before serving begins, so callers treat any error as fatal.
func Load(dir string) (*Store, error) {
	s := &Store{}

	if err := loadTable(filepath.Join(dir, customersFile), []string{"CID", "FNAME1", "LNAME", "CITY"}, func(row rowReader) {
		s.Customers = append(s.Customers, model.Customer{
			CID:    row.str("CID"),
			FNAME1: row.str("FNAME1"),
			LNAME:  row.str("LNAME"),
			CITY:   row.str("CITY"),
		})
	}); err != nil {
		return nil, err
	}

	if err := loadTable(filepath.Join(dir, inventoryFile), []string{"IID", "CID"}, func(row rowReader) {
		s.Orders = append(s.Orders, model.Order{
			IID: row.str("IID"),
			CID: row.str("CID"),
		})
	}); err != nil {
		return nil, err
	}

	if err := loadTable(filepath.Join(dir, detailFile), []string{"IID", "price_table_item_id", "item_count"}, func(row rowReader) {
		s.Details = append(s.Details, model.OrderDetail{
			IID:              row.str("IID"),
			PriceTableItemID: row.str("price_table_item_id"),
			ItemCount:        row.intval("item_count"),
		})
	}); err != nil {
		return nil, err
	}

	if err := loadTable(filepath.Join(dir, pricelistFile), []string{"item_id", "name", "baseprice", "stock"}, func(row rowReader) {
		s.PriceList = append(s.PriceList, model.PriceItem{
			ItemID:    row.str("item_id"),
			Name:      row.str("name"),
			BasePrice: row.floatval("baseprice"),
			Stock:     row.intval("stock"),
		})
	}); err != nil {
		return nil, err
	}

	return s, nil
}

// FindCustomer returns the first customer row with the given CID.
func (s *Store) FindCustomer(cid string) (model.Customer, bool) {
	for _, c := range s.Customers {
		if c.CID == cid {
			return c, true
		}
	}
	return model.Customer{}, false
}

// FindPriceItem returns the first pricelist row with the given item id.
func (s *Store) FindPriceItem(itemID string) (model.PriceItem, bool) {
	for _, p := range s.PriceList {
		if p.ItemID == itemID {
			return p, true
		}
	}
	return model.PriceItem{}, false
}

// OrdersByCustomer returns all order rows owned by the given CID, in
// table order.
func (s *Store) OrdersByCustomer(cid string) []model.Order {
	var orders []model.Order
	for _, o := range s.Orders {
		if o.CID == cid {
			orders = append(orders, o)
		}
	}
	return orders
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", filepath.Base(path), err)
	}
	return data, nil
}
