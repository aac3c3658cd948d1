package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/theme"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/testutil"
)

func themeCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == theme.StorageKey {
			return c
		}
	}
	t.Fatalf("expected %s cookie", theme.StorageKey)
	return nil
}

func TestThemeGetDefaultsToDark(t *testing.T) {
	f := newFixture(t, false)
	rr := serve(f.handler.Theme, http.MethodGet, "/api/theme")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp ThemeResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Mode != theme.Dark {
		t.Fatalf("expected dark default, got %s", resp.Mode)
	}
}

func TestThemeGetHonorsHintAndCookie(t *testing.T) {
	f := newFixture(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.Header.Set(theme.PrefersColorSchemeHeader, `"light"`)
	var resp ThemeResponse
	testutil.DecodeJSON(t, testutil.ServeRequest(http.HandlerFunc(f.handler.Theme), req), &resp)
	if resp.Mode != theme.Light {
		t.Fatalf("expected light from client hint, got %s", resp.Mode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.Header.Set(theme.PrefersColorSchemeHeader, `"light"`)
	req.AddCookie(&http.Cookie{Name: theme.StorageKey, Value: "dark"})
	testutil.DecodeJSON(t, testutil.ServeRequest(http.HandlerFunc(f.handler.Theme), req), &resp)
	if resp.Mode != theme.Dark {
		t.Fatalf("expected stored cookie to win, got %s", resp.Mode)
	}
}

func TestThemePostTogglesAndPersists(t *testing.T) {
	f := newFixture(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/theme", nil)
	req.AddCookie(&http.Cookie{Name: theme.StorageKey, Value: "dark"})
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.Theme), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp ThemeResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Mode != theme.Light {
		t.Fatalf("expected toggle to light, got %s", resp.Mode)
	}
	if c := themeCookie(t, rr); c.Value != "light" {
		t.Fatalf("expected persisted light cookie, got %q", c.Value)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/theme", nil)
	req.AddCookie(themeCookie(t, rr))
	rr = testutil.ServeRequest(http.HandlerFunc(f.handler.Theme), req)
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Mode != theme.Dark {
		t.Fatalf("expected second toggle back to dark, got %s", resp.Mode)
	}
}

func TestThemePostSetsExplicitMode(t *testing.T) {
	f := newFixture(t, false)

	rr := serve(f.handler.Theme, http.MethodPost, "/api/theme?mode=dark")
	testutil.AssertStatus(t, rr, http.StatusOK)
	if c := themeCookie(t, rr); c.Value != "dark" {
		t.Fatalf("expected explicit dark, got %q", c.Value)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/theme", strings.NewReader(`{"mode":"light"}`))
	rr = testutil.ServeRequest(http.HandlerFunc(f.handler.Theme), req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if c := themeCookie(t, rr); c.Value != "light" {
		t.Fatalf("expected body mode light, got %q", c.Value)
	}
}

func TestThemePostRejectsInvalidMode(t *testing.T) {
	f := newFixture(t, false)

	rr := serve(f.handler.Theme, http.MethodPost, "/api/theme?mode=sepia")
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	req := httptest.NewRequest(http.MethodPost, "/api/theme", strings.NewReader(`{"mode":`))
	rr = testutil.ServeRequest(http.HandlerFunc(f.handler.Theme), req)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}
