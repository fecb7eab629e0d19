// Package confirm guards destructive handlers behind an explicit
// confirmation from the user.
package confirm

import (
	"net/http"

	"github.com/angelofallars/dpm/app/event"
	"github.com/angelofallars/dpm/app/header"
	"github.com/angelofallars/dpm/app/respond"
)

// Require refuses the request with 428 Precondition Required unless the
// confirmation header is set. htmx callers are told to open the
// confirmation dialog, which replays the request with the header.
func Require(f http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !Confirmed(r) {
			respond.Error(w, r, respond.ErrConfirmationRequired, event.TriggerOpenConfirm)
			return
		}

		f(w, r)
	}
}

func Confirmed(r *http.Request) bool {
	return r.Header.Get(header.Confirm) == "true"
}
