package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"budget/config"
	"budget/database"
	"budget/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func setupAuthTestConfig(t *testing.T) *config.Config {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug", BaseURL: "http://localhost:8080"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	t.Cleanup(func() { config.GlobalConfig = nil })
	gin.SetMode(gin.TestMode)
	return cfg
}

func TestAuthHandler_SignInAnonymously(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthTestConfig(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/auth/anonymous", NewAuthHandler(cfg).SignInAnonymously)

	req := httptest.NewRequest("POST", "/auth/anonymous", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Code int `json:"code"`
		Data struct {
			Token    string `json:"token"`
			UserInfo struct {
				Username    string `json:"username"`
				IsAnonymous bool   `json:"is_anonymous"`
			} `json:"user_info"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	assert.NotEmpty(t, resp.Data.Token)
	assert.True(t, resp.Data.UserInfo.IsAnonymous)
	assert.Contains(t, resp.Data.UserInfo.Username, "guest_")

	// 签发的 token 带匿名标记
	claims, err := middleware.ParseToken(resp.Data.Token)
	require.NoError(t, err)
	assert.True(t, claims.IsAnonymous)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthTestConfig(t)

	// 邮箱未注册
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{}))
	// 用户名不存在
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{}))
	// INSERT user
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/auth/register", NewAuthHandler(cfg).Register)

	body := `{"email":"test@example.com","password":"password123"}`
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "注册成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthTestConfig(t)

	// 邮箱已存在
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "is_anonymous"}).
			AddRow(1, "existing", "test@example.com", false))

	router := gin.New()
	router.POST("/auth/register", NewAuthHandler(cfg).Register)

	body := `{"email":"test@example.com","password":"password123"}`
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "该邮箱已被注册")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthTestConfig(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email", "is_anonymous", "status", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "testuser", string(hashed), "test@example.com", false, "active", time.Now(), time.Now(), nil))

	router := gin.New()
	router.POST("/auth/login", NewAuthHandler(cfg).Login)

	body := `{"username":"testuser","password":"password123"}`
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "token")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthTestConfig(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email", "is_anonymous", "status", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "testuser", string(hashed), "test@example.com", false, "active", time.Now(), time.Now(), nil))

	router := gin.New()
	router.POST("/auth/login", NewAuthHandler(cfg).Login)

	body := `{"username":"testuser","password":"wrong-password"}`
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "用户名或密码错误")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_LockedUser(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthTestConfig(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email", "is_anonymous", "status", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "testuser", string(hashed), "test@example.com", false, "locked", time.Now(), time.Now(), nil))

	router := gin.New()
	router.POST("/auth/login", NewAuthHandler(cfg).Login)

	body := `{"username":"testuser","password":"password123"}`
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 403, w.Code)
	assert.Contains(t, w.Body.String(), "锁定")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_LinkAccount(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthTestConfig(t)

	// 当前用户为匿名账号
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email", "is_anonymous", "status", "created_at", "updated_at", "deleted_at"}).
			AddRow(7, "guest_abc123", "", "", true, "active", time.Now(), time.Now(), nil))
	// 邮箱未被正式账号占用
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{}))
	// UPDATE user
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(7))
	router.POST("/auth/link", NewAuthHandler(cfg).LinkAccount)

	body := `{"email":"linked@example.com","password":"password123"}`
	req := httptest.NewRequest("POST", "/auth/link", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Message string `json:"message"`
		Data    struct {
			Token    string `json:"token"`
			UserInfo struct {
				ID          uint   `json:"id"`
				Email       string `json:"email"`
				IsAnonymous bool   `json:"is_anonymous"`
			} `json:"user_info"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "账号关联成功", resp.Message)
	// userID 不变，账本数据随之保留
	assert.Equal(t, uint(7), resp.Data.UserInfo.ID)
	assert.Equal(t, "linked@example.com", resp.Data.UserInfo.Email)
	assert.False(t, resp.Data.UserInfo.IsAnonymous)

	// 升级后的 token 不再带匿名标记
	claims, err := middleware.ParseToken(resp.Data.Token)
	require.NoError(t, err)
	assert.False(t, claims.IsAnonymous)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_LinkAccount_AlreadyRegistered(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthTestConfig(t)

	// 当前用户已是正式账号
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email", "is_anonymous", "status", "created_at", "updated_at", "deleted_at"}).
			AddRow(7, "realuser", "hash", "real@example.com", false, "active", time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(7))
	router.POST("/auth/link", NewAuthHandler(cfg).LinkAccount)

	body := `{"email":"linked@example.com","password":"password123"}`
	req := httptest.NewRequest("POST", "/auth/link", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "已是正式账号")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_GetSession(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthTestConfig(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email", "is_anonymous", "status", "created_at", "updated_at", "deleted_at"}).
			AddRow(5, "testuser", "hash", "test@example.com", false, "active", time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(5))
	router.GET("/auth/session", NewAuthHandler(cfg).GetSession)

	req := httptest.NewRequest("GET", "/auth/session", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "testuser")
	// 密码散列不出现在响应中
	assert.NotContains(t, w.Body.String(), "hash")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_RequestPasswordReset_UnknownEmail(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthTestConfig(t)

	// 邮箱未注册，出于安全仍返回成功
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.POST("/auth/password/request-reset", NewAuthHandler(cfg).RequestPasswordReset)

	body := `{"email":"nobody@example.com"}`
	req := httptest.NewRequest("POST", "/auth/password/request-reset", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "如果该邮箱已注册")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_VerifyResetToken(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthTestConfig(t)

	router := gin.New()
	router.GET("/auth/password/verify-token", NewAuthHandler(cfg).VerifyResetToken)

	// 缺少 token 参数
	req := httptest.NewRequest("GET", "/auth/password/verify-token", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)

	// 有效令牌
	mock.ExpectQuery("SELECT .* FROM `password_resets`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "email", "expires_at", "used", "created_at", "deleted_at"}).
			AddRow(1, 5, "sometoken", "test@example.com", time.Now().Add(time.Hour), false, time.Now(), nil))

	req2 := httptest.NewRequest("GET", "/auth/password/verify-token?token=sometoken", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, 200, w2.Code)
	assert.Contains(t, w2.Body.String(), "令牌有效")

	// 已过期的令牌
	mock.ExpectQuery("SELECT .* FROM `password_resets`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "email", "expires_at", "used", "created_at", "deleted_at"}).
			AddRow(2, 5, "expiredtoken", "test@example.com", time.Now().Add(-time.Hour), false, time.Now().Add(-2*time.Hour), nil))

	req3 := httptest.NewRequest("GET", "/auth/password/verify-token?token=expiredtoken", nil)
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req3)
	assert.Equal(t, 400, w3.Code)
	assert.Contains(t, w3.Body.String(), "已过期")
	require.NoError(t, mock.ExpectationsWereMet())
}
