package customer_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportcenter/internal/customer"
	"sportcenter/internal/logger"
	"sportcenter/internal/validation"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logger.Init()
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		require.NoError(t, validation.Register(v))
	}

	handler := customer.NewHandler(customer.NewService(customer.NewRepository()))

	router := gin.New()
	router.POST("/customers", handler.Register)
	router.GET("/customers", handler.ListCustomers)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(t, router, "/customers", gin.H{
		"name":    "Alice",
		"email":   "a@b.com",
		"phone":   "1234567890",
		"address": "12 Main St",
		"age":     30,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created customer.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Alice", created.Name)
}

func TestRegisterHandlerRejectsInvalidPayload(t *testing.T) {
	router := setupRouter(t)

	// binding tags catch the malformed email before the service runs
	w := postJSON(t, router, "/customers", gin.H{
		"name":    "Alice",
		"email":   "not-an-email",
		"phone":   "1234567890",
		"address": "12 Main St",
		"age":     30,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterHandlerRejectsDuplicateName(t *testing.T) {
	router := setupRouter(t)

	body := gin.H{
		"name":    "Alice",
		"email":   "a@b.com",
		"phone":   "1234567890",
		"address": "12 Main St",
		"age":     30,
	}
	require.Equal(t, http.StatusCreated, postJSON(t, router, "/customers", body).Code)
	assert.Equal(t, http.StatusConflict, postJSON(t, router, "/customers", body).Code)
}

func TestListCustomersHandler(t *testing.T) {
	router := setupRouter(t)

	for _, name := range []string{"Alice", "Bob"} {
		w := postJSON(t, router, "/customers", gin.H{
			"name":    name,
			"email":   "a@b.com",
			"phone":   "1234567890",
			"address": "12 Main St",
			"age":     30,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest("GET", "/customers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []customer.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Alice", list[0].Name)
	assert.Equal(t, "Bob", list[1].Name)
}
