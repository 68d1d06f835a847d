package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/startpage/internal/blob"
	"github.com/GregMSThompson/startpage/internal/dto"
)

// --- Stub response handler ---

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	redirectCalled bool
	redirectTarget string
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data
	w.WriteHeader(status)
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, _, _ string) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

func (s *stubResponseHandler) Redirect(w http.ResponseWriter, _ *http.Request, target string) {
	s.redirectCalled = true
	s.redirectTarget = target
	w.WriteHeader(http.StatusSeeOther)
}

// --- Stub services ---

type stubSystemService struct {
	result     dto.Result
	err        error
	called     string
	lastRef    string
	lastReq    dto.SystemRequest
	lastDir    string
	uploadBody []byte
}

func (s *stubSystemService) AddSystem(_ context.Context, req dto.SystemRequest) (dto.Result, error) {
	s.called = "add"
	s.capture(req)
	return s.result, s.err
}

func (s *stubSystemService) UpdateSystem(_ context.Context, ref string, req dto.SystemRequest) (dto.Result, error) {
	s.called = "update"
	s.lastRef = ref
	s.capture(req)
	return s.result, s.err
}

func (s *stubSystemService) DeleteSystem(_ context.Context, ref string) (dto.Result, error) {
	s.called = "delete"
	s.lastRef = ref
	return s.result, s.err
}

func (s *stubSystemService) MoveSystem(_ context.Context, ref, direction string) (dto.Result, error) {
	s.called = "move"
	s.lastRef = ref
	s.lastDir = direction
	return s.result, s.err
}

// capture reads the upload while the request is still open.
func (s *stubSystemService) capture(req dto.SystemRequest) {
	s.lastReq = req
	if req.Image.Upload != nil {
		s.uploadBody, _ = io.ReadAll(req.Image.Upload.Body)
	}
}

type stubPageService struct {
	result   dto.Result
	err      error
	lastName string
	lastID   string
}

func (s *stubPageService) AddPage(_ context.Context, name string) (dto.Result, error) {
	s.lastName = name
	return s.result, s.err
}

func (s *stubPageService) DeletePage(_ context.Context, id string) (dto.Result, error) {
	s.lastID = id
	return s.result, s.err
}

type stubSettingsService struct {
	result  dto.Result
	err     error
	lastReq dto.SettingsRequest
}

func (s *stubSettingsService) UpdateSettings(_ context.Context, req dto.SettingsRequest) (dto.Result, error) {
	s.lastReq = req
	return s.result, s.err
}

type stubViewService struct {
	index      dto.IndexView
	admin      dto.AdminView
	err        error
	lastPageID string
}

func (s *stubViewService) Index(_ context.Context, pageID string) (dto.IndexView, error) {
	s.lastPageID = pageID
	return s.index, s.err
}

func (s *stubViewService) Admin(_ context.Context) (dto.AdminView, error) {
	return s.admin, s.err
}

type stubImageSource struct {
	info blob.Info
	data []byte
	err  error
}

func (s *stubImageSource) Get(_ context.Context, _ string) (blob.Info, io.ReadCloser, error) {
	if s.err != nil {
		return blob.Info{}, nil, s.err
	}
	return s.info, io.NopCloser(bytes.NewReader(s.data)), nil
}

// withChiParams injects chi URL parameters into the request context.
func withChiParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}
