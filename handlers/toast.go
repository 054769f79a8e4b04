package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

// toastCookieName carries the toast across plain (non-HTMX) redirects, where
// the HX-Trigger header is lost.
const toastCookieName = "leadpanel_toast"

// SetToast queues a toast notification for the client. For HTMX requests the
// HX-Trigger header fires the event; any payload already queued on the header
// is merged into, never replaced. A short-lived cookie duplicates the toast
// so it also survives a regular redirect.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	toast := map[string]string{"message": message, "type": toastType}

	payload := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &payload); err != nil {
			log.Printf("toast: discarding unparsable HX-Trigger value: %v", err)
			payload = map[string]any{}
		}
	}
	payload["showToast"] = toast

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("toast: could not marshal HX-Trigger payload: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))

	cookieVal, err := json.Marshal(toast)
	if err != nil {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     toastCookieName,
		Value:    url.QueryEscape(string(cookieVal)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // the toast script reads it
		SameSite: http.SameSiteLaxMode,
	})
}

// ErrorToast queues an error toast and answers with the given status. HX-Reswap
// is set to none so HTMX drops the body instead of swapping the error text
// into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
