package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/domain"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/pkg/httputil"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/service/dispatch"
)

// Dispatcher is the slice of the dispatch engine the API needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, req domain.DispatchRequest) (dispatch.DispatchResult, error)
}

// Handlers holds the intake endpoint's dependencies.
type Handlers struct {
	dispatcher Dispatcher
}

// HandleSendWelcome processes POST /api/send-welcome with body
// {"name": ..., "email": ...}.
//
// Status contract (always a JSON {message, reason} body):
//
//	200 — sent or already_sent
//	202 — in_flight: another dispatch for this contact is running
//	400 — validation: malformed input, nothing written
//	500 — store_error (nothing sent, retryable) or delivery_failed
//	      (contact recorded, transport rejected)
func (h *Handlers) HandleSendWelcome(w http.ResponseWriter, r *http.Request) {
	var req domain.DispatchRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	res, err := h.dispatcher.Dispatch(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrValidation):
			httputil.Fail(w, http.StatusBadRequest, "name and a valid email are required", dispatch.ReasonValidation)
		case errors.Is(err, dispatch.ErrDelivery):
			httputil.Fail(w, http.StatusInternalServerError, "welcome email could not be delivered", dispatch.ReasonDeliveryFailed)
		default:
			httputil.Fail(w, http.StatusInternalServerError, "signup could not be processed", dispatch.ReasonStoreError)
		}
		return
	}

	switch res.Reason {
	case dispatch.ReasonInFlight:
		httputil.Accepted(w, "signup is already being processed", res.Reason)
	case dispatch.ReasonAlreadySent:
		httputil.OK(w, "welcome email was already sent", res.Reason)
	default:
		httputil.OK(w, "welcome email is on its way", res.Reason)
	}
}
