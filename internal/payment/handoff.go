package payment

import (
	"time"

	"github.com/appetiteclub/apt"
)

// DefaultHandoffWindow is how long the runner waits before checking whether
// the app deep link actually handed control to a native app.
const DefaultHandoffWindow = 1500 * time.Millisecond

// Navigator abstracts the client surface the handoff drives: primary
// navigation to an app URI, opening the generic fallback, and the focus
// probe the detection heuristic relies on.
type Navigator interface {
	Navigate(uri string) error
	OpenFallback(uri string) error
	HasFocus() bool
}

// Plan describes one app handoff attempt: the app-specific URI to try and
// the generic UPI URI to fall back to.
type Plan struct {
	App         App    `json:"app"`
	AppURI      string `json:"app_uri"`
	FallbackURI string `json:"fallback_uri"`
}

// PlanFor builds the handoff plan for one payment app against an identity.
func PlanFor(app App, id Identity, amount float64) Plan {
	return Plan{
		App:         app,
		AppURI:      BuildAppURI(app, id.UpiID, id.UpiName, amount),
		FallbackURI: BuildUpiURI(id.UpiID, id.UpiName, amount),
	}
}

// Handoff executes handoff plans against a Navigator with timer-based
// fallback detection. If the page still has focus once the window elapses
// the native app did not open and the generic UPI link is used instead.
// The check is a heuristic; a user switching windows during the wait
// produces a false positive, which is accepted.
type Handoff struct {
	nav    Navigator
	window time.Duration
	after  func(time.Duration) <-chan time.Time
	logger apt.Logger
}

// NewHandoff creates a runner with the default detection window.
func NewHandoff(nav Navigator, logger apt.Logger) *Handoff {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Handoff{
		nav:    nav,
		window: DefaultHandoffWindow,
		after:  time.After,
		logger: logger,
	}
}

// Run navigates to the plan's app URI then waits out the detection window in
// the background. Fire and forget: the caller regains control immediately,
// and a tab closed before the timer fires just abandons the pending check.
func (h *Handoff) Run(plan Plan) {
	if err := h.nav.Navigate(plan.AppURI); err != nil {
		h.logger.Debug("app navigation failed, using fallback", "app", string(plan.App), "error", err)
		if err := h.nav.OpenFallback(plan.FallbackURI); err != nil {
			h.logger.Debug("fallback open failed", "error", err)
		}
		return
	}

	go func() {
		<-h.after(h.window)
		if !h.nav.HasFocus() {
			return
		}
		if err := h.nav.OpenFallback(plan.FallbackURI); err != nil {
			h.logger.Debug("fallback open failed", "error", err)
		}
	}()
}
