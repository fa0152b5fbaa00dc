package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"api-technician/handler"
	"api-technician/model"
	"api-technician/store"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticProvinces []model.Province

func (p staticProvinces) FetchAll(ctx context.Context) ([]model.Province, error) {
	return p, nil
}

type staticVerifier string

func (v staticVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if idToken != string(v) {
		return nil, errors.New("token invalid")
	}
	return &auth.Token{UID: "admin"}, nil
}

func newTestRouter(opts Options) *gin.Engine {
	gin.SetMode(gin.TestMode)
	technicians := &handler.TechnicianHandler{Store: store.NewMemoryStore(), Logger: zap.NewNop(), ImageBaseURL: "https://your-domain.com"}
	geo := &handler.GeoHandler{Geo: staticProvinces{{ID: 1, NameTH: "กรุงเทพมหานคร"}}, Logger: zap.NewNop()}
	return SetupRouter(technicians, geo, opts)
}

func request(r *gin.Engine, method, target, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w, decoded
}

func search(q string) string {
	return "/technicians?" + url.Values{"q": {q}}.Encode()
}

func TestTechnicianLifecycle(t *testing.T) {
	r := newTestRouter(Options{})

	w, body := request(r, http.MethodPost, "/technicians", "", map[string]any{
		"name":       "สมชาย",
		"age":        "35",
		"experience": "10",
		"phone":      "0812345678",
		"address":    map[string]any{"street": "123 ถ.สุขุมวิท", "district": "บางนา", "province": "กรุงเทพ"},
		"skills":     []string{"ช่างไฟฟ้ากำลัง"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["id"].(string)

	_, body = request(r, http.MethodGet, search("บางนา"), "", nil)
	assert.EqualValues(t, 1, body["matched"])
	_, body = request(r, http.MethodGet, search("สมชาย"), "", nil)
	assert.EqualValues(t, 1, body["matched"])
	_, body = request(r, http.MethodGet, search("เชียงใหม่"), "", nil)
	assert.EqualValues(t, 0, body["matched"])

	w, body = request(r, http.MethodPut, "/technicians/"+id, "", map[string]any{
		"address": map[string]any{"province": "สมุทรปราการ"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["back"])

	w, body = request(r, http.MethodGet, "/technicians/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "สมชาย", body["name"])
	assert.Equal(t, "สมุทรปราการ", body["address"].(map[string]any)["province"])
	assert.Equal(t, "บางนา", body["address"].(map[string]any)["district"])

	w, _ = request(r, http.MethodDelete, "/technicians/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = request(r, http.MethodGet, "/technicians/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = request(r, http.MethodDelete, "/technicians/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteRoutesRequireToken(t *testing.T) {
	r := newTestRouter(Options{Verifier: staticVerifier("secret")})
	payload := map[string]any{
		"name":    "สมชาย",
		"phone":   812345678,
		"address": map[string]any{"street": "1", "district": "บางนา", "province": "กรุงเทพ"},
	}

	w, _ := request(r, http.MethodPost, "/technicians", "", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = request(r, http.MethodPost, "/technicians", "wrong", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = request(r, http.MethodGet, "/technicians", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = request(r, http.MethodPost, "/technicians", "secret", payload)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(Options{})
	w, body := request(r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])

	w, _ = request(r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	r = newTestRouter(Options{Metrics: prometheus.NewRegistry()})
	w, _ = request(r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = request(r, http.MethodGet, "/geo/provinces", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["provinces"], 1)
}
