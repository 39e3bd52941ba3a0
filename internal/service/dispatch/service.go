package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/domain"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/pkg/logger"
)

// Machine-readable reason codes carried in DispatchResult and in the API
// error envelope.
const (
	ReasonSent           = "sent"
	ReasonAlreadySent    = "already_sent"
	ReasonInFlight       = "in_flight"
	ReasonValidation     = "validation"
	ReasonStoreError     = "store_error"
	ReasonDeliveryFailed = "delivery_failed"
)

// DispatchResult reports the outcome of one Dispatch call.
// Accepted=true guarantees the transport confirmed acceptance at least once
// for this contact (possibly on an earlier call, see ReasonAlreadySent).
// Accepted=false with a nil error means nothing was sent for this call.
type DispatchResult struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason"`
}

// Service orchestrates intake validation, the idempotent contact upsert,
// composition, the transport send, and state reconciliation. All methods are
// safe for concurrent use; cross-request coordination happens entirely in
// the repository's per-key conflict semantics.
type Service struct {
	repo        Repository
	composer    Composer
	transport   Transport
	sendTimeout time.Duration
}

// NewService creates a dispatch engine. sendTimeout bounds the transport
// call; zero or negative selects a 30s default.
func NewService(repo Repository, composer Composer, transport Transport, sendTimeout time.Duration) *Service {
	if sendTimeout <= 0 {
		sendTimeout = 30 * time.Second
	}
	return &Service{repo: repo, composer: composer, transport: transport, sendTimeout: sendTimeout}
}

// Dispatch runs the full intake-to-notification sequence for one signup.
//
// The returned error, when non-nil, is one of the package sentinels
// (wrapped). On ErrValidation and ErrStore nothing was sent; on ErrDelivery
// the contact row exists and the send was attempted and rejected. With a nil
// error the result reason is one of sent, already_sent, or in_flight.
//
// Once the contact row is written the remaining steps run on a detached
// context: a client disconnect must not leave email_sent stuck at pending
// for a mail that actually went out.
func (s *Service) Dispatch(ctx context.Context, req domain.DispatchRequest) (DispatchResult, error) {
	if err := req.Validate(); err != nil {
		return DispatchResult{Reason: ReasonValidation}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	email := domain.NormalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)

	contact, inserted, err := s.repo.Upsert(ctx, email, name)
	if err != nil {
		logger.Error("contact upsert failed", "email", email, "step", "upsert", "error", err)
		return DispatchResult{Reason: ReasonStoreError}, fmt.Errorf("upsert contact: %w", ErrStore)
	}

	if !inserted {
		switch contact.EmailSent {
		case domain.DeliverySent:
			// Re-registration of a confirmed contact keeps the prior sent
			// state; the transport is not charged again.
			logger.Info("contact already notified", "email", email)
			return DispatchResult{Accepted: true, Reason: ReasonAlreadySent}, nil
		case domain.DeliveryPending:
			logger.Info("dispatch already in flight", "email", email)
			return DispatchResult{Accepted: false, Reason: ReasonInFlight}, nil
		case domain.DeliveryFailed:
			claimed, err := s.repo.ClaimRetry(ctx, email)
			if err != nil {
				logger.Error("retry claim failed", "email", email, "step", "claim", "error", err)
				return DispatchResult{Reason: ReasonStoreError}, fmt.Errorf("claim retry: %w", ErrStore)
			}
			if !claimed {
				logger.Info("retry claimed by another dispatcher", "email", email)
				return DispatchResult{Accepted: false, Reason: ReasonInFlight}, nil
			}
		}
	}

	// From here on the caller's disconnect no longer matters.
	detached := context.WithoutCancel(ctx)

	msg := s.composer.Compose(*contact)

	sendCtx, cancel := context.WithTimeout(detached, s.sendTimeout)
	err = s.transport.Send(sendCtx, msg)
	cancel()
	if err != nil {
		logger.Error("welcome send failed", "email", email, "step", "send", "error", err)
		s.reconcile(detached, email, domain.DeliveryFailed)
		return DispatchResult{Accepted: false, Reason: ReasonDeliveryFailed}, fmt.Errorf("send welcome email: %w", ErrDelivery)
	}

	s.reconcile(detached, email, domain.DeliverySent)
	logger.Info("welcome email sent", "email", email)
	return DispatchResult{Accepted: true, Reason: ReasonSent}, nil
}

// reconcile records the send outcome. It is best-effort: the send already
// happened or didn't, and a bookkeeping failure must not overturn that fact,
// so errors are logged and swallowed.
func (s *Service) reconcile(ctx context.Context, email string, state domain.DeliveryState) {
	rctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.repo.SetDeliveryState(rctx, email, state); err != nil {
		logger.Error("delivery state not recorded", "email", email, "state", string(state), "error", err)
	}
}
