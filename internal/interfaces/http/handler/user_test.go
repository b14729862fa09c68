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

func newUserRouter(store *MockStore) *gin.Engine {
	router := setupTestRouter()
	NewUserHandler(store).RegisterRoutes(router.Group("/api"))
	return router
}

func TestUserHandler_Create_Defaults(t *testing.T) {
	store := new(MockStore)
	store.On("Insert", mock.Anything, "user", shared.Document{
		"name":      "Grace Hopper",
		"email":     "grace@example.com",
		"role":      "rep",
		"is_active": true,
	}).Return("65f000000000000000000040", nil)

	router := newUserRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"name": "Grace Hopper", "email": "grace@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	store.AssertExpectations(t)
}

func TestUserHandler_Create_BadEmail(t *testing.T) {
	store := new(MockStore)
	router := newUserRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"name": "Grace", "email": "not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error struct {
			Details []struct {
				Field string `json:"field"`
			} `json:"details"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	if assert.Len(t, body.Error.Details, 1) {
		assert.Equal(t, "email", body.Error.Details[0].Field)
	}
	store.AssertNotCalled(t, "Insert")
}

func TestUserHandler_List_RoleAndTeam(t *testing.T) {
	store := new(MockStore)
	store.On("Find", mock.Anything, "user", shared.Document{
		"role": "manager",
		"team": "emea",
	}, shared.FindOptions{Limit: 50}).Return([]shared.Document{}, nil)

	router := newUserRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/users?role=manager&team=emea", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)
}
