package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pipelinekit/asset-tracking-api/internal/constants"
	"github.com/pipelinekit/asset-tracking-api/internal/middleware"
	"github.com/pipelinekit/asset-tracking-api/internal/models"
	"github.com/pipelinekit/asset-tracking-api/internal/repository"
	"github.com/pipelinekit/asset-tracking-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
	router      *gin.Engine
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.FriendList{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	handler := NewAuthHandler(authService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)
	r.POST("/getuser", handler.GetUser)
	r.POST("/searchuser", handler.SearchUsers)
	r.POST("/profile", handler.UpdateProfile)
	r.POST("/changepass", handler.ChangePassword)
	r.GET("/me", middleware.RequireAuth(), handler.GetCurrentUser)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
		router:      r,
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/register", map[string]string{
		"username":  "alice",
		"email":     "Alice@X.com",
		"password":  "secret1",
		"avatarURL": "https://cdn.example.com/a.png",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	user := body["user"].(map[string]interface{})
	require.Equal(t, "alice", user["username"])
	require.Equal(t, "alice@x.com", user["email"], "email must be lower-cased")
	require.Equal(t, constants.DefaultUserRole, user["role"])
	require.NotContains(t, user, "password")
	require.NotContains(t, user, "PasswordHash")
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "secret1",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "MISSING_FIELDS", decodeBody(t, w)["error"])
}

func TestAuthHandler_Register_WeakPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/register", map[string]string{
		"username":  "alice",
		"email":     "a@x.com",
		"password":  "short",
		"avatarURL": "https://cdn.example.com/a.png",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "WEAK_PASSWORD", decodeBody(t, w)["error"])
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	env := setupAuthTestEnv(t)

	first := doJSON(t, env.router, http.MethodPost, "/register", map[string]string{
		"username":  "alice",
		"email":     "a@x.com",
		"password":  "secret1",
		"avatarURL": "https://cdn.example.com/a.png",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	// Same username, different email
	second := doJSON(t, env.router, http.MethodPost, "/register", map[string]string{
		"username":  "alice",
		"email":     "other@x.com",
		"password":  "secret2",
		"avatarURL": "https://cdn.example.com/b.png",
	})
	require.Equal(t, http.StatusConflict, second.Code)
	require.Equal(t, "DUPLICATE_USER", decodeBody(t, second)["error"])

	// Same email with different casing, different username
	third := doJSON(t, env.router, http.MethodPost, "/register", map[string]string{
		"username":  "bob",
		"email":     "A@X.COM",
		"password":  "secret3",
		"avatarURL": "https://cdn.example.com/c.png",
	})
	require.Equal(t, http.StatusConflict, third.Code)
	require.Equal(t, "DUPLICATE_USER", decodeBody(t, third)["error"])
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Username:  "alice",
		Email:     "a@x.com",
		Password:  "secret1",
		AvatarURL: "https://cdn.example.com/a.png",
	})
	require.NoError(t, err)

	// By username
	w := doJSON(t, env.router, http.MethodPost, "/login", map[string]string{
		"identifier": "alice",
		"password":   "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["user"].(map[string]interface{})
	require.Equal(t, "alice", user["username"])
	require.NotEmpty(t, w.Result().Cookies(), "expected session cookie to be set")

	// By email, case-insensitive
	w = doJSON(t, env.router, http.MethodPost, "/login", map[string]string{
		"identifier": "A@X.com",
		"password":   "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Wrong password and unknown user yield the same error
	wrong := doJSON(t, env.router, http.MethodPost, "/login", map[string]string{
		"identifier": "alice",
		"password":   "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, wrong.Code)
	require.Equal(t, "INVALID_LOGIN", decodeBody(t, wrong)["error"])

	unknown := doJSON(t, env.router, http.MethodPost, "/login", map[string]string{
		"identifier": "nobody",
		"password":   "secret1",
	})
	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, "INVALID_LOGIN", decodeBody(t, unknown)["error"])
}

func TestAuthHandler_GetUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(services.RegisterInput{
		Username:  "alice",
		Email:     "a@x.com",
		Password:  "secret1",
		AvatarURL: "https://cdn.example.com/a.png",
	})
	require.NoError(t, err)

	w := doJSON(t, env.router, http.MethodPost, "/getuser", map[string]string{
		"id": user.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)["user"].(map[string]interface{})
	require.Equal(t, "alice", got["username"])
	require.Equal(t, "a@x.com", got["email"])
	require.NotEmpty(t, got["createdAt"])
	require.NotContains(t, got, "password")

	missing := doJSON(t, env.router, http.MethodPost, "/getuser", map[string]string{
		"id": "ffffffff-0000-0000-0000-000000000000",
	})
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.Equal(t, "USER_NOT_FOUND", decodeBody(t, missing)["error"])
}

func TestAuthHandler_SearchUsers(t *testing.T) {
	env := setupAuthTestEnv(t)

	for _, name := range []string{"alice", "alicia", "bob"} {
		_, err := env.authService.Register(services.RegisterInput{
			Username:  name,
			Email:     name + "@x.com",
			Password:  "secret1",
			AvatarURL: "https://cdn.example.com/a.png",
		})
		require.NoError(t, err)
	}

	w := doJSON(t, env.router, http.MethodPost, "/searchuser", map[string]string{
		"query": "ALI",
	})
	require.Equal(t, http.StatusOK, w.Code)
	results := decodeBody(t, w)["results"].([]interface{})
	require.Len(t, results, 2)

	// No match is an empty list, not an error
	none := doJSON(t, env.router, http.MethodPost, "/searchuser", map[string]string{
		"query": "zzz",
	})
	require.Equal(t, http.StatusOK, none.Code)
	require.Empty(t, decodeBody(t, none)["results"])
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(services.RegisterInput{
		Username:  "alice",
		Email:     "a@x.com",
		Password:  "secret1",
		AvatarURL: "https://cdn.example.com/a.png",
	})
	require.NoError(t, err)

	w := doJSON(t, env.router, http.MethodPost, "/profile", map[string]string{
		"uid":   user.ID,
		"email": "New@X.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated, err := env.authService.GetUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, "new@x.com", updated.Email)
	require.Equal(t, "alice", updated.Username, "omitted fields stay untouched")
	require.True(t, updated.UpdatedAt.After(user.UpdatedAt) || updated.UpdatedAt.Equal(user.UpdatedAt))
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(services.RegisterInput{
		Username:  "alice",
		Email:     "a@x.com",
		Password:  "secret1",
		AvatarURL: "https://cdn.example.com/a.png",
	})
	require.NoError(t, err)

	wrongOld := doJSON(t, env.router, http.MethodPost, "/changepass", map[string]string{
		"uid":         user.ID,
		"oldPassword": "wrong",
		"newPassword": "secret2",
	})
	require.Equal(t, http.StatusUnauthorized, wrongOld.Code)
	require.Equal(t, "INVALID_OLD_PASSWORD", decodeBody(t, wrongOld)["error"])

	tooShort := doJSON(t, env.router, http.MethodPost, "/changepass", map[string]string{
		"uid":         user.ID,
		"oldPassword": "secret1",
		"newPassword": "tiny",
	})
	require.Equal(t, http.StatusBadRequest, tooShort.Code)
	require.Equal(t, "PASSWORD_TOO_SHORT", decodeBody(t, tooShort)["error"])

	ok := doJSON(t, env.router, http.MethodPost, "/changepass", map[string]string{
		"uid":         user.ID,
		"oldPassword": "secret1",
		"newPassword": "secret2",
	})
	require.Equal(t, http.StatusOK, ok.Code)

	_, err = env.authService.Login("alice", "secret2")
	require.NoError(t, err)
	_, err = env.authService.Login("alice", "secret1")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Username:  "alice",
		Email:     "a@x.com",
		Password:  "secret1",
		AvatarURL: "https://cdn.example.com/a.png",
	})
	require.NoError(t, err)

	// Without a session
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Log in and replay the session cookie
	login := doJSON(t, env.router, http.MethodPost, "/login", map[string]string{
		"identifier": "alice",
		"password":   "secret1",
	})
	require.Equal(t, http.StatusOK, login.Code)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, cookie := range login.Result().Cookies() {
		req.AddCookie(cookie)
	}
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["user"].(map[string]interface{})
	require.Equal(t, "alice", user["username"])
}
