package billing

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(service *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewHandler(service)
	r.POST("/bills", h.CreateBill)
	r.GET("/bills/:id", h.GetBill)
	r.PATCH("/bills/:id", h.UpdateBill)
	r.POST("/bills/:id/pay", h.Pay)
	r.POST("/bills/:id/receipt", h.SendReceipt)

	return r
}

func createTestBill(t *testing.T, r *gin.Engine) Bill {
	t.Helper()

	payload := map[string]any{
		"table": "Table 5",
		"items": testItems,
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/bills", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var bill Bill
	if err := json.Unmarshal(w.Body.Bytes(), &bill); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return bill
}

func TestCreateBillEndpoint(t *testing.T) {
	s, _, _ := newTestService()
	r := setupTestRouter(s)

	bill := createTestBill(t, r)

	if !almostEqual(bill.Total, 1254.4) {
		t.Errorf("expected total 1254.4, got %v", bill.Total)
	}
}

func TestPatchBill_TipAndDiscount(t *testing.T) {
	s, _, _ := newTestService()
	r := setupTestRouter(s)

	bill := createTestBill(t, r)

	body := []byte(`{"tip_percent": 10, "discount": 100}`)
	req := httptest.NewRequest(http.MethodPatch, "/bills/"+bill.OrderID, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated Bill
	json.Unmarshal(w.Body.Bytes(), &updated)

	if !almostEqual(updated.Total, 1266.4) {
		t.Errorf("expected total 1266.4, got %v", updated.Total)
	}
}

func TestPatchBill_NothingToUpdate(t *testing.T) {
	s, _, _ := newTestService()
	r := setupTestRouter(s)

	bill := createTestBill(t, r)

	req := httptest.NewRequest(http.MethodPatch, "/bills/"+bill.OrderID, bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestPayEndpoint_NoMethodSelected(t *testing.T) {
	s, _, _ := newTestService()
	r := setupTestRouter(s)

	bill := createTestBill(t, r)

	req := httptest.NewRequest(http.MethodPost, "/bills/"+bill.OrderID+"/pay", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestReceiptEndpoint_InvalidPhone(t *testing.T) {
	s, _, _ := newTestService()
	r := setupTestRouter(s)

	bill := createTestBill(t, r)

	body := []byte(`{"phone": "0012345"}`)
	req := httptest.NewRequest(http.MethodPost, "/bills/"+bill.OrderID+"/receipt", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
