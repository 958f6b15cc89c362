package httpd_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.trai.ch/webassets/internal/adapters/httpd"
	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports/mocks"
	"go.trai.ch/webassets/internal/engine/registry"
	"go.trai.ch/webassets/internal/engine/responder"
	"go.uber.org/mock/gomock"
)

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func newHandler(ctrl *gomock.Controller, store *mocks.MockVersionStore) *httpd.Handler {
	reg := registry.New(domain.FreezeOff, store, quietLogger(ctrl))
	res := responder.New(reg, store, "", quietLogger(ctrl))
	return httpd.NewHandler(res, "/_assets", quietLogger(ctrl))
}

func TestServeHTTP_VersionedAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockVersionStore(ctrl)
	store.EXPECT().
		Load(gomock.Any(), "main", "style.css", "cafe").
		Return([]byte("text/css\nbody {}"), time.Minute, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/_assets/main/style.css?_v=cafe", nil)

	newHandler(ctrl, store).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "body {}" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "text/css" {
		t.Errorf("unexpected content type %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "max-age=31104000" {
		t.Errorf("unexpected cache control %q", got)
	}
}

func TestServeHTTP_ConditionalRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockVersionStore(ctrl) // must stay untouched

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/_assets/main/style.css?_v=cafe", nil)
	req.Header.Set("If-None-Match", "cafe")

	newHandler(ctrl, store).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", rec.Code)
	}
}

func TestServeHTTP_UnknownAssetIs404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockVersionStore(ctrl)
	store.EXPECT().
		Load(gomock.Any(), "main", "style.css", "cafe").
		Return(nil, time.Duration(0), domain.ErrCacheMiss)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/_assets/main/style.css?_v=cafe", nil)

	newHandler(ctrl, store).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestServeHTTP_OutsidePrefixIs404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockVersionStore(ctrl)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/other/main/style.css", nil)

	newHandler(ctrl, store).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
