package controllers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/fsdevblog/linkward/internal/config"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// newTestRouter собирает полноценный роутер со всеми middleware поверх моков.
func newTestRouter(userServ UserManager, linkServ LinkManager) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return SetupRouter(RouterParams{
		UserService: userServ,
		LinkService: linkServ,
		AppConf: &config.Config{
			JWTSecret: "test-secret",
			Logger:    logger,
		},
	})
}

// makeRequest выполняет запрос к роутеру. Тело body (если не nil)
// сериализуется в JSON.
func makeRequest(
	t *testing.T,
	router *gin.Engine,
	method, path string,
	body any,
	headers map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, marshalErr := json.Marshal(body)
		require.NoError(t, marshalErr)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeJSON разбирает тело ответа в map.
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}
