package handler

import (
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/osse101/DecisionSpinner_Go/internal/ads"
	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/logger"
	"github.com/osse101/DecisionSpinner_Go/internal/metrics"
	"github.com/osse101/DecisionSpinner_Go/internal/options"
	"github.com/osse101/DecisionSpinner_Go/internal/spin"
)

// SpinHandler serves the wheel endpoints
type SpinHandler struct {
	spins   spin.Service
	options options.Service
	ads     ads.Service
	now     func() time.Time

	// settled counts spins completed through this handler, for interstitials
	settled atomic.Int64
}

// NewSpinHandler creates a spin handler. adsSvc may be ads.Noop().
func NewSpinHandler(spins spin.Service, opts options.Service, adsSvc ads.Service) *SpinHandler {
	if adsSvc == nil {
		adsSvc = ads.Noop()
	}
	return &SpinHandler{
		spins:   spins,
		options: opts,
		ads:     adsSvc,
		now:     time.Now,
	}
}

// SpinResponse is a settled spin plus the interstitial to show, if any
type SpinResponse struct {
	domain.SpinResult
	Interstitial string `json:"interstitial,omitempty"`
}

// HandleSpin spins the wheel with the current options
// @Summary Spin the wheel
// @Description Picks a winner and blocks until the spin animation has settled
// @Tags spin
// @Produce json
// @Success 200 {object} SpinResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /spin [post]
func (h *SpinHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		result *domain.SpinResult
		err    error
	)
	for attempt := 0; attempt < spinSnapshotAttempts; attempt++ {
		opts, revision := h.options.Snapshot(ctx)
		result, err = h.spins.RequestSpinAt(ctx, opts, revision)
		if !errors.Is(err, domain.ErrOptionsChanged) {
			break
		}
	}
	if err != nil {
		reason := rejectReason(err)
		metrics.SpinsRejected.WithLabelValues(reason).Inc()
		logger.FromContext(ctx).Info(LogMsgSpinRejected, "reason", reason, "error", err)
		respondServiceError(w, r, "spin", err)
		return
	}

	resp := SpinResponse{SpinResult: *result}
	if name, due := h.ads.InterstitialDue(int(h.settled.Add(1))); due {
		resp.Interstitial = name
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleSnapshot returns the wheel's state at the current instant
// @Summary Wheel snapshot
// @Description Current angle, progress and pointer position for polling clients
// @Tags spin
// @Produce json
// @Success 200 {object} domain.SpinSnapshot
// @Router /spin [get]
func (h *SpinHandler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.spins.Snapshot(h.now()))
}

// HandleReset stops any spin and returns the wheel to idle
// @Summary Reset the wheel
// @Tags spin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /spin/reset [post]
func (h *SpinHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.spins.Reset(r.Context()); err != nil {
		respondServiceError(w, r, "reset", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSpinReset})
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrSpinInProgress):
		return RejectReasonInProgress
	case errors.Is(err, domain.ErrInsufficientOptions):
		return RejectReasonInsufficient
	case errors.Is(err, domain.ErrSpinCancelled):
		return RejectReasonCancelled
	case errors.Is(err, domain.ErrServiceClosed):
		return RejectReasonShutdown
	case errors.Is(err, domain.ErrOptionsChanged):
		return RejectReasonOptionsChanged
	default:
		return RejectReasonOther
	}
}
