package auth

import "net/http"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "sessionToken"

// sessionMaxAge matches the token's 24-hour expiry.
const sessionMaxAge = 86400

// SetSessionCookie attaches the signed token to the response. HttpOnly
// keeps it away from page scripts, Secure restricts it to encrypted
// transport, and SameSite=Strict keeps it off cross-site requests.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}
