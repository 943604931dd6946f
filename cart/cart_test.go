package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	values map[string]string
	getErr error
	setErr error
}

func newMemStorage() *memStorage {
	return &memStorage{values: map[string]string{}}
}

func (m *memStorage) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStorage) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func fanInput() AddInput {
	return AddInput{
		ProductID: "fan-1",
		NameEn:    "Ceiling Fan",
		NameBn:    "সিলিং ফ্যান",
		Price:     100,
		Quantity:  1,
		BrandEn:   "Walton",
	}
}

func TestAdd_MergesByID(t *testing.T) {
	st := newMemStorage()
	c := Load(st, "cart:test")

	require.NoError(t, c.Add(fanInput()))

	// A second add with a different snapshot only bumps the quantity.
	second := fanInput()
	second.Quantity = 2
	second.Price = 9999
	second.NameEn = "Renamed Fan"
	require.NoError(t, c.Add(second))

	require.Equal(t, 1, c.Len())
	item := c.Items()[0]
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, float64(100), item.Price)
	assert.Equal(t, "Ceiling Fan", item.Name.En)
}

func TestAdd_QuantityFloorAndNameFallback(t *testing.T) {
	c := Load(newMemStorage(), "cart:test")

	in := AddInput{ProductID: "p1", NameEn: "Lamp", Quantity: 0, Price: 50}
	require.NoError(t, c.Add(in))

	item := c.Items()[0]
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "Lamp", item.Name.Bn, "missing bengali name falls back to english")
}

func TestAdd_OptionalVariants(t *testing.T) {
	c := Load(newMemStorage(), "cart:test")

	in := fanInput()
	in.ModelEn = ""
	in.ModelBn = ""
	require.NoError(t, c.Add(in))

	item := c.Items()[0]
	assert.Nil(t, item.Model, "empty variant is omitted, not stored blank")
	require.NotNil(t, item.Brand)
	assert.Equal(t, "Walton", item.Brand.En)
	assert.Equal(t, "Walton", item.Brand.Bn, "single-locale variant fills both locales")
}

func TestTotals(t *testing.T) {
	c := Load(newMemStorage(), "cart:test")
	require.NoError(t, c.Add(AddInput{ProductID: "a", NameEn: "A", Price: 100, Quantity: 1}))
	require.NoError(t, c.Add(AddInput{ProductID: "b", NameEn: "B", Price: 75, Quantity: 2}))

	totals := c.Totals()
	assert.Equal(t, 3, totals.Count)
	assert.Equal(t, float64(250), totals.Total)
}

func TestRemove_Idempotent(t *testing.T) {
	c := Load(newMemStorage(), "cart:test")
	require.NoError(t, c.Add(fanInput()))

	require.NoError(t, c.Remove("fan-1"))
	assert.Equal(t, 0, c.Len())
	require.NoError(t, c.Remove("fan-1"))
	assert.Equal(t, 0, c.Len())
}

func TestClear(t *testing.T) {
	st := newMemStorage()
	c := Load(st, "cart:test")
	require.NoError(t, c.Add(fanInput()))
	require.NoError(t, c.Clear())

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Totals{}, c.Totals())
	assert.Equal(t, "[]", st.values["cart:test"], "cleared cart persists an empty array")
}

func TestLoad_RoundTrip(t *testing.T) {
	st := newMemStorage()
	c := Load(st, "cart:test")
	require.NoError(t, c.Add(fanInput()))
	require.NoError(t, c.Add(AddInput{ProductID: "b", NameEn: "B", Price: 75, Quantity: 2}))

	again := Load(st, "cart:test")
	require.Equal(t, 2, again.Len())
	assert.Equal(t, c.Items(), again.Items())
}

func TestLoad_ToleratesBadStorage(t *testing.T) {
	cases := []struct {
		name    string
		storage *memStorage
	}{
		{"missing", newMemStorage()},
		{"corrupt", &memStorage{values: map[string]string{"cart:test": "{not json"}}},
		{"wrong shape", &memStorage{values: map[string]string{"cart:test": `{"id":"x"}`}}},
		{"read error", &memStorage{getErr: errors.New("db gone")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Load(tc.storage, "cart:test")
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestLoad_DropsZeroQuantityLines(t *testing.T) {
	st := newMemStorage()
	st.values["cart:test"] = `[{"id":"a","name":{"en":"A","bn":"এ"},"price":10,"quantity":0},{"id":"b","name":{"en":"B","bn":"বি"},"price":20,"quantity":1}]`

	c := Load(st, "cart:test")
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "b", c.Items()[0].ID)
}

func TestItems_ReturnsCopy(t *testing.T) {
	c := Load(newMemStorage(), "cart:test")
	require.NoError(t, c.Add(fanInput()))

	snapshot := c.Items()
	snapshot[0].Quantity = 99
	assert.Equal(t, 1, c.Items()[0].Quantity)
}
