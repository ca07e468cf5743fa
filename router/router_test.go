package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ledger/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T, cfg *config.Config) (http.Handler, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	log := logrus.New()
	log.Out = new(bytes.Buffer)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return SetupRouter(ctx, cfg, db, log), mock
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestSetupRouter_Routes(t *testing.T) {
	h, mock := setupRouter(t, &config.Config{Server: config.ServerConfig{Mode: "test"}})

	mock.ExpectQuery("SELECT (.+) FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category"}).AddRow(1, "Food"))

	w := serve(h, http.MethodGet, "/categories/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"category":"Food"}]`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	// search 路由优先于 :id
	w = serve(h, http.MethodGet, "/transactions/search/")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = serve(h, http.MethodGet, "/transactions/abc")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = serve(h, http.MethodOptions, "/transactions/")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(h, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetupRouter_RateLimit(t *testing.T) {
	h, mock := setupRouter(t, &config.Config{Server: config.ServerConfig{
		Mode: "test",
		RateLimit: config.RateLimitConfig{
			Enabled:  true,
			Requests: 1,
			Window:   time.Minute,
		},
	}})

	mock.ExpectQuery("SELECT (.+) FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category"}))

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/categories/").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, http.MethodGet, "/categories/").Code)
	// 健康检查不受限流影响
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/health").Code)

	require.NoError(t, mock.ExpectationsWereMet())
}
