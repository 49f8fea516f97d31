package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/repository/memory"
	"github.com/erasmus-survival/erasmusbot/internal/service"
)

func newTestServer(t *testing.T) (*httptest.Server, *service.Service) {
	t.Helper()

	l := logrus.New()
	l.SetOutput(io.Discard)

	svc := service.New(memory.NewStateRepository(), l)
	require.NoError(t, svc.Load(context.Background()))

	ts := httptest.NewServer(NewServer(svc, l).Handler())
	t.Cleanup(ts.Close)
	return ts, svc
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAddExpense_RejectsNonPositiveAmount(t *testing.T) {
	ts, svc := newTestServer(t)

	for _, amount := range []float64{0, -12.5} {
		resp := doJSON(t, http.MethodPost, ts.URL+"/api/expenses", models.Expense{
			Amount: amount, CategoryID: "cat-fixed",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	}
	assert.Empty(t, svc.Expenses(), "rejected expenses must not be stored")
}

func TestAddExpense_Created(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/expenses", models.Expense{
		Amount: 15.9, Description: "groceries", CategoryID: "cat-survival",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeBody[models.Expense](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 15.9, created.Amount)
	assert.False(t, created.Date.IsZero(), "server assigns the date when omitted")
}

func TestGetPantry_IncludesDerivedStockLevel(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/pantry", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := decodeBody[[]pantryItemView](t, resp)
	require.NotEmpty(t, items)

	byName := map[string]models.StockLevel{}
	for _, item := range items {
		byName[item.Name] = item.StockLevel
	}
	assert.Equal(t, models.StockEmpty, byName["Chicken"])
	assert.Equal(t, models.StockOK, byName["Eggs"])
}

func TestToggleListItem_RunsPantrySync(t *testing.T) {
	ts, svc := newTestServer(t)
	ctx := context.Background()

	// Seed milk sits at 1/1; knock it down so the refill is visible.
	require.NoError(t, svc.ConsumePantryItem(ctx, "pantry-3", 1))

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/lists/list-super/items", map[string]string{
		"name": "milk",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decodeBody[models.ShoppingItem](t, resp)
	assert.Equal(t, "1", item.Quantity)

	resp = doJSON(t, http.MethodPut, ts.URL+"/api/lists/list-super/items/"+item.ID+"/toggle", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	milk, ok := svc.PantryItemByName("Milk")
	require.True(t, ok)
	assert.Equal(t, milk.MaxQty, milk.CurrentQty, "checking off a match refills the pantry")
}

func TestAddListItem_UnknownListIs404(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/lists/no-such-list/items", map[string]string{
		"name": "milk",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestImport_RejectsMalformedPayloadWholesale(t *testing.T) {
	ts, svc := newTestServer(t)

	before := svc.ExportSnapshot()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/import", strings.NewReader(`{"expenses": [{`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "invalid backup file", body["error"])

	after := svc.ExportSnapshot()
	assert.Equal(t, len(before.PantryItems), len(after.PantryItems))
	assert.Equal(t, len(before.Expenses), len(after.Expenses))
}

func TestExport_SetsAttachmentFilename(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	disposition := resp.Header.Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "erasmus-backup-")

	data := decodeBody[models.AppData](t, resp)
	assert.NotNil(t, data.PantryItems)
	assert.NotNil(t, data.Expenses, "all sections are present even when empty")
}

func TestReset_RestoresSeeds(t *testing.T) {
	ts, svc := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/expenses", models.Expense{Amount: 5})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/reset", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	assert.Empty(t, svc.Expenses())
	assert.Len(t, svc.PantryItems(), 8)
}

func TestAddEvent_ValidatesWeekday(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/events", models.ScheduleEvent{
		Title: "Lecture", Day: "Someday", StartTime: "10:00", EndTime: "11:00",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
