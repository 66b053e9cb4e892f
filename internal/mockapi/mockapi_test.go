package mockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winkhq/onboard/internal/client/api"
	"github.com/winkhq/onboard/internal/client/models"
	"github.com/winkhq/onboard/internal/client/repositories/companies"
	"github.com/winkhq/onboard/internal/client/services"
	"github.com/winkhq/onboard/internal/logging"
)

func testConfig() *Config {
	return &Config{
		Addr:         ":0",
		BaseURL:      "http://127.0.0.1:8080",
		UploadDir:    "uploads",
		JWTSecret:    "test-secret",
		TokenTTL:     time.Hour,
		DemoEmail:    "demo@example.com",
		DemoPassword: "demo123",
		DemoName:     "Utilisateur Demo",
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	// EnsureSubdDir works relative to the cwd; keep uploads inside the test dir.
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(old) })

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s, err := NewServer(testConfig(), logger)
	require.NoError(t, err)
	return s
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["message"]
}

func TestLogin_OK(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/auth/login", map[string]string{"email": "demo@example.com", "password": "demo123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User  models.AuthUser `json:"user"`
		Token string          `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "demo@example.com", resp.User.Email)
	require.NotEmpty(t, resp.Token)

	// Token must verify against the configured secret.
	parsed, err := jwt.ParseWithClaims(resp.Token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/auth/login", map[string]string{"email": "demo@example.com", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Email ou mot de passe incorrect", decodeMessage(t, w))
}

func TestLogin_MissingFields(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/auth/login", map[string]string{"email": "demo@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "L'email et le mot de passe sont requis", decodeMessage(t, w))
}

func TestCreateCompany_OK(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/companies/create", map[string]string{"name": "  Acme  ", "address": "1 Main Street"})
	require.Equal(t, http.StatusCreated, w.Code)

	var company Company
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &company))
	assert.Equal(t, "Acme", company.Name)
	assert.NotEmpty(t, company.ID)
	assert.NotEmpty(t, company.CreatedAt)
	assert.Equal(t, 1, s.companies.count())
}

func TestCreateCompany_Validation(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(t, s, "/api/companies/create", map[string]string{"address": "1 Main Street"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Le nom de l'entreprise est requis", decodeMessage(t, w))

	w = postJSON(t, s, "/api/companies/create", map[string]string{"name": "Acme"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "L'adresse est requise", decodeMessage(t, w))
}

func uploadLogo(t *testing.T, s *Server, filename, mediaType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="logo"; filename="`+filename+`"`)
	h.Set("Content-Type", mediaType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/companies/upload-logo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestUploadLogo_OK(t *testing.T) {
	s := newTestServer(t)

	w := uploadLogo(t, s, "logo.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.URL, "/logos/")
	assert.Contains(t, resp.URL, "logo.png")

	// The file landed in the upload directory.
	entries, err := os.ReadDir(s.uploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestUploadLogo_Rejections(t *testing.T) {
	s := newTestServer(t)

	w := uploadLogo(t, s, "logo.svg", "image/svg+xml", []byte("<svg/>"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Format de fichier non supporté. Formats acceptés : JPEG, PNG, GIF, WebP", decodeMessage(t, w))

	req := httptest.NewRequest(http.MethodPost, "/api/companies/upload-logo", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Aucun fichier fourni", decodeMessage(t, rec))
}

// memRepo is a minimal drafts repository for the end-to-end client check.
type memRepo struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (r *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[key], nil
}

func (r *memRepo) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
	return nil
}

func (r *memRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *memRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = map[string][]byte{}
	return nil
}

func TestClientStackAgainstMockServer(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	adapter := api.NewHTTPAdapter(srv.URL)
	ctx := context.Background()

	auth := services.NewAuthService(adapter, &memRepo{data: map[string][]byte{}}, logger)
	user, err := auth.Login(ctx, "demo@example.com", "demo123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	repo := companies.NewAPIRepository(adapter)
	uploaded, err := repo.UploadLogo(ctx, &models.LiveFile{Name: "logo.png", MediaType: "image/png", Data: []byte{0x89}})
	require.NoError(t, err)
	require.NotEmpty(t, uploaded.URL)

	company, err := repo.Create(ctx, models.CreateCompanyRequest{Name: "Acme", Address: "1 Main Street", LogoURL: uploaded.URL})
	require.NoError(t, err)
	assert.Equal(t, "Acme", company.Name)
	assert.Equal(t, uploaded.URL, company.LogoURL)

	// The error message from a rejected creation reaches the client verbatim.
	_, err = repo.Create(ctx, models.CreateCompanyRequest{Name: "  ", Address: "1 Main Street"})
	require.Error(t, err)
}
