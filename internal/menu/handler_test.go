package menu

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
	r.GET("/menu/items", h.List)
	r.POST("/menu/items", h.Create)
	r.PUT("/menu/items/:id", h.Update)
	r.DELETE("/menu/items/:id", h.Delete)
	r.PATCH("/menu/items/:id/availability", h.ToggleAvailability)

	return r
}

func TestCreateItem_Success(t *testing.T) {
	r := setupTestRouter(NewService(NewMockRepository(), mockStorage{}))

	body, _ := json.Marshal(validInput())
	req := httptest.NewRequest(http.MethodPost, "/menu/items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var item MenuItem
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if item.ID == "" {
		t.Error("expected generated id in response")
	}
}

func TestCreateItem_ValidationError(t *testing.T) {
	r := setupTestRouter(NewService(NewMockRepository(), mockStorage{}))

	in := validInput()
	in.PreparationTime = 999

	body, _ := json.Marshal(in)
	req := httptest.NewRequest(http.MethodPost, "/menu/items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "preparation time must be less than 180 minutes" {
		t.Errorf("expected field-specific message, got %q", resp["error"])
	}
}

func TestListItems_EmptyCatalog(t *testing.T) {
	r := setupTestRouter(NewService(NewMockRepository(), mockStorage{}))

	req := httptest.NewRequest(http.MethodGet, "/menu/items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Items []MenuItem `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Items == nil || len(resp.Items) != 0 {
		t.Errorf("expected empty array, got %v", resp.Items)
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	r := setupTestRouter(NewService(NewMockRepository(), mockStorage{}))

	req := httptest.NewRequest(http.MethodDelete, "/menu/items/missing-id", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
