package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/facerec/internal/imaging"
	"github.com/example/facerec/internal/repository"
	"github.com/example/facerec/internal/training"
	"github.com/example/facerec/internal/usecase"
)

type stubUserStore struct {
	created []*repository.User
	nextID  uint
}

func (s *stubUserStore) Create(ctx context.Context, user *repository.User) error {
	s.nextID++
	user.ID = s.nextID
	s.created = append(s.created, user)
	return nil
}

type stubPhotoStore struct {
	saved int
}

func (s *stubPhotoStore) Save(userID uint, originalName string, src io.Reader) (string, error) {
	s.saved++
	return fmt.Sprintf("images/%d/%s", userID, originalName), nil
}

type stubRegistry struct {
	model *repository.Model
	err   error
}

func (s *stubRegistry) Latest(ctx context.Context) (*repository.Model, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.model, nil
}

type noopCache struct{}

func (noopCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (noopCache) Get(ctx context.Context, key string) (string, error) {
	return "", fmt.Errorf("miss")
}

type testEnv struct {
	router *gin.Engine
	users  *stubUserStore
	photos *stubPhotoStore
	queue  *training.Queue
}

func newTestEnv(t *testing.T, registry *stubRegistry) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:  &stubUserStore{},
		photos: &stubPhotoStore{},
		queue:  training.NewQueue(0),
	}

	logger := zap.NewNop()
	reg := usecase.NewRegistrationUseCase(env.users, env.photos, env.queue, logger)
	pred := usecase.NewPredictionUseCase(registry, stubArtifacts{}, stubPredictor{}, noopCache{}, logger)
	info := usecase.NewModelInfoUseCase(registry, logger)

	env.router = gin.New()
	env.router.MaxMultipartMemory = MaxUploadSize
	RegisterRoutes(env.router, reg, pred, info, t.TempDir())
	return env
}

type stubArtifacts struct{}

func (stubArtifacts) ReadArtifact(version int64) ([]byte, error) {
	return []byte("artifact"), nil
}

type stubPredictor struct{}

func (stubPredictor) Predict(ctx context.Context, artifact []byte, image *imaging.PixelBuffer) ([]string, error) {
	return []string{"1"}, nil
}

func buildForm(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	for name, payload := range files {
		part, err := writer.CreateFormFile(name, name+".jpg")
		if err != nil {
			t.Fatalf("create file part %s: %v", name, err)
		}
		if _, err := part.Write(payload); err != nil {
			t.Fatalf("write file part %s: %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
	return payload
}

func TestRegisterWithoutNameReturns400(t *testing.T) {
	env := newTestEnv(t, &stubRegistry{err: repository.ErrNoModel})

	body, contentType := buildForm(t, map[string]string{"position": "engineer"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1.0/user/register", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	payload := decodeJSON(t, resp)
	if payload["message"] != "Name is required" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
	if len(env.users.created) != 0 {
		t.Fatalf("no user must be created, got %d", len(env.users.created))
	}
	if env.queue.Len() != 0 {
		t.Fatalf("no task must be enqueued, got %d", env.queue.Len())
	}
}

func TestRegisterCreatesUserWithoutPhotos(t *testing.T) {
	env := newTestEnv(t, &stubRegistry{err: repository.ErrNoModel})

	body, contentType := buildForm(t, map[string]string{"name": "alice", "position": "engineer"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1.0/user/register", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	payload := decodeJSON(t, resp)
	if payload["status"] != "success" {
		t.Fatalf("unexpected status: %v", payload["status"])
	}
	user, ok := payload["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing user payload: %v", payload)
	}
	if user["name"] != "alice" || user["position"] != "engineer" {
		t.Fatalf("unexpected user payload: %v", user)
	}
	if env.queue.Len() != 0 {
		t.Fatalf("registration without photos must not enqueue, got %d", env.queue.Len())
	}
}

func TestRegisterWithPhotosEnqueuesTraining(t *testing.T) {
	env := newTestEnv(t, &stubRegistry{err: repository.ErrNoModel})

	body, contentType := buildForm(t,
		map[string]string{"name": "alice"},
		map[string][]byte{"photos": []byte("fake image bytes")})
	req := httptest.NewRequest(http.MethodPost, "/api/v1.0/user/register", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if env.photos.saved != 1 {
		t.Fatalf("expected 1 saved photo, got %d", env.photos.saved)
	}
	if env.queue.Len() != 1 {
		t.Fatalf("expected 1 enqueued task, got %d", env.queue.Len())
	}
}

func TestModelInfoBeforeAnyTraining(t *testing.T) {
	env := newTestEnv(t, &stubRegistry{err: repository.ErrNoModel})

	req := httptest.NewRequest(http.MethodGet, "/api/v1.0/model", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	payload := decodeJSON(t, resp)
	if payload["error"] != "model is not ready" {
		t.Fatalf("unexpected error: %v", payload["error"])
	}
}

func TestModelInfoReturnsLatestWithHostURL(t *testing.T) {
	registry := &stubRegistry{model: &repository.Model{
		Version: 2,
		URL:     "models/Faces_v2.mlmodel",
		Users:   []repository.User{{ID: 1, Name: "alice"}, {ID: 2, Name: "bob"}},
	}}
	env := newTestEnv(t, registry)

	req := httptest.NewRequest(http.MethodGet, "/api/v1.0/model", nil)
	req.Host = "faces.example.com"
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	payload := decodeJSON(t, resp)
	model, ok := payload["model"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing model payload: %v", payload)
	}
	if model["version"] != float64(2) {
		t.Fatalf("unexpected version: %v", model["version"])
	}
	if model["url"] != "http://faces.example.com/models/Faces_v2.mlmodel" {
		t.Fatalf("unexpected url: %v", model["url"])
	}
	users, ok := model["users"].([]interface{})
	if !ok || len(users) != 2 {
		t.Fatalf("unexpected users payload: %v", model["users"])
	}
}

func TestRecognizeWithoutImageReturns400(t *testing.T) {
	env := newTestEnv(t, &stubRegistry{err: repository.ErrNoModel})

	body, contentType := buildForm(t, map[string]string{"other": "field"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1.0/user/recognize", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	payload := decodeJSON(t, resp)
	if payload["message"] != "image is required" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
}

func TestRecognizeBeforeAnyTraining(t *testing.T) {
	env := newTestEnv(t, &stubRegistry{err: repository.ErrNoModel})

	body, contentType := buildForm(t, nil, map[string][]byte{"image": []byte("payload")})
	req := httptest.NewRequest(http.MethodPost, "/api/v1.0/user/recognize", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	payload := decodeJSON(t, resp)
	if payload["error"] != "model is not ready" {
		t.Fatalf("unexpected error: %v", payload["error"])
	}
}
