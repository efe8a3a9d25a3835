package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/homechef/marketplace-api/config"
	"github.com/homechef/marketplace-api/router"
	"github.com/homechef/marketplace-api/utils"
)

var testDBCounter int64

// setupTest spins up a router backed by a fresh in-memory database.
func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_foreign_keys=1", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.AutoMigrate(db))

	return db, router.SetupRouter(db)
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func dataObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	data, ok := parseBody(t, w)["data"].(map[string]interface{})
	require.True(t, ok, "response data is not an object: %s", w.Body.String())
	return data
}

func dataList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	data, ok := parseBody(t, w)["data"].([]interface{})
	require.True(t, ok, "response data is not a list: %s", w.Body.String())
	return data
}

// signupUser registers an account and returns the signup response data.
func signupUser(t *testing.T, r *gin.Engine, userType, email, phone string) map[string]interface{} {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/signup", "", gin.H{
		"first_name":   "Test",
		"last_name":    "User",
		"email":        email,
		"phone_number": phone,
		"password":     "secret123",
		"user_type":    userType,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return dataObject(t, w)
}

// loginUser logs in with the default test password and returns the token.
func loginUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, ok := dataObject(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

// newChef registers and logs in a chef, returning its user id and token.
func newChef(t *testing.T, r *gin.Engine, email, phone string) (uint, string) {
	t.Helper()
	profile := signupUser(t, r, "chef", email, phone)
	user := profile["user"].(map[string]interface{})
	return uint(user["id"].(float64)), loginUser(t, r, email)
}

// newConsumer registers and logs in a consumer, returning its user id and token.
func newConsumer(t *testing.T, r *gin.Engine, email, phone string) (uint, string) {
	t.Helper()
	profile := signupUser(t, r, "consumer", email, phone)
	user := profile["user"].(map[string]interface{})
	return uint(user["id"].(float64)), loginUser(t, r, email)
}

// createCategory adds a catalog category as the given chef and returns its id.
func createCategory(t *testing.T, r *gin.Engine, chefToken, name string) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/dishes/chef/categories", chefToken, gin.H{
		"name": name,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(dataObject(t, w)["id"].(float64))
}

// createDish adds a dish for the chef and returns its id.
func createDish(t *testing.T, r *gin.Engine, chefToken string, categoryID uint, name, price string) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/dishes/chef", chefToken, gin.H{
		"name":             name,
		"description":      "A test dish",
		"category_id":      categoryID,
		"price":            price,
		"preparation_time": 30,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(dataObject(t, w)["id"].(float64))
}
