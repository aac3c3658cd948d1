package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFromRequestDefaultsToDark(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := FromRequest(r); got != Dark {
		t.Fatalf("expected dark default, got %s", got)
	}
}

func TestFromRequestUsesClientHint(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(PrefersColorSchemeHeader, `"light"`)
	if got := FromRequest(r); got != Light {
		t.Fatalf("expected light from client hint, got %s", got)
	}
}

func TestFromRequestCookieWins(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(PrefersColorSchemeHeader, "dark")
	r.AddCookie(&http.Cookie{Name: StorageKey, Value: "light"})
	if got := FromRequest(r); got != Light {
		t.Fatalf("expected cookie to win, got %s", got)
	}
}

func TestWriteCookieRoundTrip(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteCookie(rr, Light)
	if rr.Header().Get("Accept-CH") != PrefersColorSchemeHeader {
		t.Fatalf("expected Accept-CH header")
	}

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != StorageKey || cookies[0].Value != "light" {
		t.Fatalf("unexpected cookies %+v", cookies)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])
	if got := FromRequest(r); got != Light {
		t.Fatalf("expected persisted mode to be read back, got %s", got)
	}
}
