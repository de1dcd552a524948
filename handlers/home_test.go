package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventplanner/testhelpers"
)

func TestHandleHome_RedirectsToRecommend(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleHome(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/recommend" {
		t.Errorf("expected redirect to /recommend, got %q", loc)
	}
}
