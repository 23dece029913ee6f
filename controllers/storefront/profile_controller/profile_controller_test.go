package profile_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EShop-Commerce/eshop-storefront-gateway/middleware"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
	"github.com/EShop-Commerce/eshop-storefront-gateway/services"
	"github.com/EShop-Commerce/eshop-storefront-gateway/store"
)

func newTestRouter(upstreamURL string) (*gin.Engine, *store.Manager) {
	gin.SetMode(gin.TestMode)
	manager := store.NewManager(nil)
	controller := NewProfileController(services.NewShopAPIClient(upstreamURL))

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.SessionMiddleware(manager))

	user := api.Group("/user")
	user.Use(middleware.AuthMiddleware())
	user.GET("/profile", controller.GetProfile)
	user.PATCH("/profile", controller.UpdateProfile)

	return router, manager
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "eshop_session", Value: "test-session"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signIn(manager *store.Manager) *store.Session {
	sess := manager.Get(context.Background(), "test-session")
	sess.Auth.SetUser(&models.User{ID: 1, Name: "A", Email: "a@x.com"})
	sess.Auth.SetToken("tok-abc")
	return sess
}

func TestGetProfileRequiresSignIn(t *testing.T) {
	router, _ := newTestRouter("http://unused")

	w := doRequest(t, router, http.MethodGet, "/api/v1/user/profile", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetProfileReturnsStoreSnapshot(t *testing.T) {
	router, manager := newTestRouter("http://unused")
	signIn(manager)

	w := doRequest(t, router, http.MethodGet, "/api/v1/user/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	raw, _ := json.Marshal(resp.Data)
	var user models.User
	require.NoError(t, json.Unmarshal(raw, &user))
	assert.Equal(t, "a@x.com", user.Email)
}

func TestUpdateProfileForwardsAndRefreshesSnapshot(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/update-profile", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		var req models.UpdateProfileRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(map[string]models.User{
			"user": {ID: 1, Name: req.Name, Email: req.Email},
		})
	}))
	defer upstream.Close()

	router, manager := newTestRouter(upstream.URL)
	sess := signIn(manager)

	w := doRequest(t, router, http.MethodPatch, "/api/v1/user/profile",
		models.UpdateProfileRequest{Name: "New Name", Email: "new@x.com"})
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, sess.Auth.User())
	assert.Equal(t, "New Name", sess.Auth.User().Name)
	assert.Equal(t, "tok-abc", sess.Auth.Token(), "updating the user must not alter the token")
}

func TestUpdateProfileSurfacesUpstreamMessage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "Email already taken"})
	}))
	defer upstream.Close()

	router, manager := newTestRouter(upstream.URL)
	sess := signIn(manager)

	w := doRequest(t, router, http.MethodPatch, "/api/v1/user/profile",
		models.UpdateProfileRequest{Name: "New Name", Email: "taken@x.com"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Email already taken", resp.Message)

	// a failed update leaves the snapshot alone
	assert.Equal(t, "A", sess.Auth.User().Name)
}

func TestUpdateProfileValidatesPayload(t *testing.T) {
	router, manager := newTestRouter("http://unused")
	signIn(manager)

	w := doRequest(t, router, http.MethodPatch, "/api/v1/user/profile", gin.H{"name": "no email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
