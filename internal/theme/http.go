package theme

import (
	"net/http"
	"strings"
	"time"
)

// PrefersColorSchemeHeader is the client hint carrying the system preference.
const PrefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

const cookieMaxAge = 365 * 24 * time.Hour

// FromRequest resolves the mode for a request: the themeMode cookie when
// valid, else the color-scheme client hint, else dark.
func FromRequest(r *http.Request) Mode {
	stored := ""
	if c, err := r.Cookie(StorageKey); err == nil {
		stored = c.Value
	}
	return Resolve(stored, prefersDark(r))
}

func prefersDark(r *http.Request) bool {
	hint := strings.Trim(strings.TrimSpace(r.Header.Get(PrefersColorSchemeHeader)), `"`)
	return !strings.EqualFold(hint, string(Light))
}

// WriteCookie persists mode on the response and asks the client to send the
// color-scheme hint on later requests.
func WriteCookie(w http.ResponseWriter, mode Mode) {
	w.Header().Add("Accept-CH", PrefersColorSchemeHeader)
	http.SetCookie(w, &http.Cookie{
		Name:     StorageKey,
		Value:    string(mode),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
