package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newLeadRouter(store *MockStore) *gin.Engine {
	router := setupTestRouter()
	NewLeadHandler(store).RegisterRoutes(router.Group("/api"))
	return router
}

func TestLeadHandler_Create_Success(t *testing.T) {
	store := new(MockStore)
	store.On("Insert", mock.Anything, "lead", shared.Document{
		"name":   "Ada Lovelace",
		"email":  "ada@example.com",
		"status": "new",
	}).Return("65f000000000000000000001", nil)

	router := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/leads",
		strings.NewReader(`{"name": "Ada Lovelace", "email": "ada@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "65f000000000000000000001", body["_id"])
	store.AssertExpectations(t)
}

func TestLeadHandler_Create_ScoreOutOfRange(t *testing.T) {
	store := new(MockStore)
	router := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/leads",
		strings.NewReader(`{"name": "Ada", "score": 150}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Details []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"details"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "ERR_VALIDATION", body.Error.Code)
	if assert.Len(t, body.Error.Details, 1) {
		assert.Equal(t, "score", body.Error.Details[0].Field)
	}
	store.AssertNotCalled(t, "Insert")
}

func TestLeadHandler_Create_ScoreAtUpperBound(t *testing.T) {
	store := new(MockStore)
	store.On("Insert", mock.Anything, "lead", mock.Anything).Return("65f000000000000000000002", nil)

	router := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/leads",
		strings.NewReader(`{"name": "Ada", "score": 100}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	store.AssertExpectations(t)
}

func TestLeadHandler_List_SearchFilter(t *testing.T) {
	store := new(MockStore)
	store.On("Find", mock.Anything, "lead", shared.Document{
		"status": "qualified",
		"$or": []shared.Document{
			{"name": containsCI("Ada")},
			{"email": containsCI("Ada")},
			{"phone": containsCI("Ada")},
		},
	}, shared.FindOptions{Limit: 50}).Return([]shared.Document{
		{"_id": "65f000000000000000000001", "name": "Ada Lovelace"},
	}, nil)

	router := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/leads?status=qualified&q=Ada", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var docs []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	assert.Len(t, docs, 1)
	assert.Equal(t, "Ada Lovelace", docs[0]["name"])
	store.AssertExpectations(t)
}

func TestLeadHandler_List_NoMatchesIsEmptyArray(t *testing.T) {
	store := new(MockStore)
	store.On("Find", mock.Anything, "lead", shared.Document{}, shared.FindOptions{Limit: 50}).
		Return([]shared.Document(nil), nil)

	router := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestLeadHandler_List_NegativeLimit(t *testing.T) {
	store := new(MockStore)
	router := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/leads?limit=-5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "Find")
}

func TestLeadHandler_Update_Success(t *testing.T) {
	store := new(MockStore)
	store.On("UpdateByID", mock.Anything, "lead", "65f000000000000000000001",
		shared.Document{"status": "contacted"}).Return(nil)

	router := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/65f000000000000000000001",
		strings.NewReader(`{"status": "contacted"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]bool
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["updated"])
	store.AssertExpectations(t)
}

func TestLeadHandler_Update_NotFound(t *testing.T) {
	store := new(MockStore)
	store.On("UpdateByID", mock.Anything, "lead", "65f0000000000000000000ff", mock.Anything).
		Return(shared.ErrNotFound)

	router := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/65f0000000000000000000ff",
		strings.NewReader(`{"status": "lost"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeadHandler_Update_MalformedID(t *testing.T) {
	store := new(MockStore)
	store.On("UpdateByID", mock.Anything, "lead", "not-an-id", mock.Anything).
		Return(shared.ErrInvalidID)

	router := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/not-an-id",
		strings.NewReader(`{"status": "lost"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeadHandler_Update_UnknownField(t *testing.T) {
	store := new(MockStore)
	router := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/65f000000000000000000001",
		strings.NewReader(`{"stauts": "contacted"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "UpdateByID")
}

func TestLeadHandler_Update_EmptyPayload(t *testing.T) {
	store := new(MockStore)
	router := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/65f000000000000000000001",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "UpdateByID")
}

func TestLeadHandler_Create_StoreUnavailable(t *testing.T) {
	store := new(MockStore)
	store.On("Insert", mock.Anything, "lead", mock.Anything).
		Return("", shared.ErrStoreUnavailable)

	router := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/leads",
		strings.NewReader(`{"name": "Ada"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
