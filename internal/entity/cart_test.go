package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTotal(t *testing.T) {
	assert.Equal(t, int64(70), LineTotal(LineItem{UnitPrice: 35, Quantity: 2}))
	assert.Equal(t, int64(649), LineTotal(LineItem{UnitPrice: 649, Quantity: 1}))
}

func TestCartTotalEmptyIsZero(t *testing.T) {
	assert.Equal(t, int64(0), CartTotal(nil))
	assert.Equal(t, int64(0), CartTotal([]LineItem{}))
}

// The snapshot layout must round-trip field-for-field: both snapshot
// stores persist the cart as json.Marshal([]LineItem).
func TestSnapshotLayoutRoundTrip(t *testing.T) {
	items := []LineItem{
		{
			ID:           1724234567890,
			ProductID:    "freefire",
			ProductTitle: "Free Fire",
			ProductImage: "/img/freefire.jpg",
			PackageID:    "ff1",
			PackageLabel: "Free Fire 25 Diamonds",
			UnitPrice:    35,
			Quantity:     2,
			AccountID:    "12345",
			ServerID:     "asia-1",
		},
		{
			// subscription line: no server id, minimal fields set
			ID:           1724234567891,
			ProductID:    "netflix",
			ProductTitle: "Netflix",
			PackageID:    "p1",
			PackageLabel: "Netflix Standard - 1 Month",
			UnitPrice:    649,
			Quantity:     1,
			AccountID:    "user@mail.example",
		},
	}

	raw, err := json.Marshal(items)
	require.NoError(t, err)

	var got []LineItem
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, items, got)
}

func TestSnapshotLayoutFieldNames(t *testing.T) {
	raw, err := json.Marshal(LineItem{ID: 7, ProductID: "pubg", UnitPrice: 30, Quantity: 1, AccountID: "a1"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{"id", "productId", "productTitle", "productImage", "packageId", "packageLabel", "unitPrice", "quantity", "accountId"} {
		assert.Contains(t, m, key)
	}
	assert.NotContains(t, m, "serverId", "empty server id is omitted")
}

func TestBuildOrderPayloadStampsEveryLine(t *testing.T) {
	items := []LineItem{
		{ID: 1, ProductTitle: "Free Fire", PackageLabel: "25 Diamonds", AccountID: "12345", UnitPrice: 35, Quantity: 2},
		{ID: 2, ProductTitle: "Netflix", PackageLabel: "Standard", AccountID: "u@mail.example", UnitPrice: 649, Quantity: 1},
	}

	p := BuildOrderPayload("u1", items, "1RD2J")
	assert.Equal(t, "u1", p.BuyerID)
	require.Len(t, p.Lines, 2)
	for _, line := range p.Lines {
		assert.Equal(t, "1RD2J", line.RemarksCode)
		assert.Equal(t, StatusPending, line.Status)
	}
	assert.Equal(t, int64(70), p.Lines[0].Total)
	assert.Equal(t, int64(649), p.Lines[1].Total)
}
