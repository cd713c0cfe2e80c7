package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"larder/internal/delivery/http/validator"
	"larder/internal/domain/repository"
	"larder/internal/domain/service"
	"larder/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func (s *stubBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, repository.ErrBlobNotFound
	}

	return data, nil
}

func (s *stubBlobStore) Set(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = data

	return nil
}

type silentNotifier struct{}

func (silentNotifier) Notify(service.NotificationKind, string, string) {}

func createTestListHandler(t *testing.T) *ListHandler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	factory := impl.NewListStoreFactory(&stubBlobStore{blobs: make(map[string][]byte)}, silentNotifier{}, logger)

	return &ListHandler{
		lists:  factory,
		logger: logger,
	}
}

func newListContext(e *echo.Echo, method, target, body, identity string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", identity)

	return c, rec
}

func TestListHandler_CreateThenGetLists(t *testing.T) {
	handler := createTestListHandler(t)

	e := echo.New()
	e.Validator = validator.New()

	c, rec := newListContext(e, http.MethodPost, "/lists", `{"name":"Weekly Shop"}`, "u1")
	require.NoError(t, handler.CreateList(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Weekly Shop")

	c, rec = newListContext(e, http.MethodGet, "/lists", "", "u1")
	require.NoError(t, handler.GetLists(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Weekly Shop", envelope.Data[0].Name)
}

func TestListHandler_CreateList_AnonymousIsRejected(t *testing.T) {
	handler := createTestListHandler(t)

	e := echo.New()
	e.Validator = validator.New()

	c, _ := newListContext(e, http.MethodPost, "/lists", `{"name":"Weekly Shop"}`, "")
	err := handler.CreateList(c)
	assert.Error(t, err)
}

func TestListHandler_GetLists_AnonymousIsEmpty(t *testing.T) {
	handler := createTestListHandler(t)

	e := echo.New()

	c, rec := newListContext(e, http.MethodGet, "/lists", "", "")
	require.NoError(t, handler.GetLists(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListHandler_GetList_UnknownIDFails(t *testing.T) {
	handler := createTestListHandler(t)

	e := echo.New()

	c, _ := newListContext(e, http.MethodGet, "/lists/nope", "", "u1")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := handler.GetList(c)
	assert.Error(t, err)
}
