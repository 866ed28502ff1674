package httpapi

import (
	"net/http"

	"arabian-treat-hub/admin-svc/internal/service"
)

// DayOpenGate refuses admin traffic while the shift is locked. Only the
// start-new-day action and settings reads pass, so a locked admin can still
// see the store state and reopen. The gate is advisory, the same as the
// lock screen it mirrors, not a security control.
func DayOpenGate(settingsSvc service.SettingsServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ungated(r) {
				next.ServeHTTP(w, r)
				return
			}

			store, err := settingsSvc.Get()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if !store.IsDayOpen {
				http.Error(w, "Day is closed, start a new day first", http.StatusLocked)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ungated(r *http.Request) bool {
	if r.Method == http.MethodPost && r.URL.Path == "/api/admin/shift/start" {
		return true
	}
	if r.Method == http.MethodGet && r.URL.Path == "/api/admin/settings" {
		return true
	}
	return false
}
