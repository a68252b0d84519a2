package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func writeFixtures(t *testing.T, dir string) {
	writeDataset(t, dir, "Customers.csv", "CID,FNAME1,LNAME,CITY\nc1,Alice,Smith,Raleigh\nc2,Bob,Jones,Durham\n")
	writeDataset(t, dir, "Inventory.csv", "IID,CID\no1,c1\no2,c2\n")
	writeDataset(t, dir, "Detail.csv", "IID,price_table_item_id,item_count\no1,i1,2\no2,i2,1\n")
	writeDataset(t, dir, "Pricelist.csv", "item_id,name,baseprice,stock\ni1,Widget,25.00,3\ni2,Gadget,60.00,0\n")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)

	s, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, s.Customers, 2)
	assert.Equal(t, "Alice", s.Customers[0].FNAME1)
	assert.Equal(t, "Raleigh", s.Customers[0].CITY)

	require.Len(t, s.Orders, 2)
	assert.Equal(t, "c2", s.Orders[1].CID)

	require.Len(t, s.Details, 2)
	assert.Equal(t, "i1", s.Details[0].PriceTableItemID)
	assert.Equal(t, 2, s.Details[0].ItemCount)

	require.Len(t, s.PriceList, 2)
	assert.Equal(t, 25.00, s.PriceList[0].BasePrice)
	assert.Equal(t, 0, s.PriceList[1].Stock)
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "Pricelist.csv")))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pricelist.csv")
}

func TestLoadMissingColumn(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	writeDataset(t, dir, "Customers.csv", "CID,FNAME1,LNAME\nc1,Alice,Smith\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "CITY"`)
}

func TestLoadToleratesMalformedNumericCells(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	writeDataset(t, dir, "Pricelist.csv", "item_id,name,baseprice,stock\ni1,Widget,not-a-number,3\ni2,Gadget,60.00,2.0\n")

	s, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, s.PriceList, 2)
	assert.Equal(t, 0.0, s.PriceList[0].BasePrice)
	assert.Equal(t, 2, s.PriceList[1].Stock)
}

func TestStoreLookups(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)

	s, err := Load(dir)
	require.NoError(t, err)

	c, ok := s.FindCustomer("c2")
	assert.True(t, ok)
	assert.Equal(t, "Bob Jones", c.FullName())

	_, ok = s.FindCustomer("c9")
	assert.False(t, ok)

	p, ok := s.FindPriceItem("i1")
	assert.True(t, ok)
	assert.Equal(t, "Widget", p.Name)

	orders := s.OrdersByCustomer("c1")
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].IID)
}
