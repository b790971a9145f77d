// Package card models the three-face flip card: which face is shown, how it
// rotates, and the re-entrancy guard around the flip animation.
package card

import (
	"errors"
	"sync"
	"time"
)

// Face is one of the three mutually exclusive card faces.
type Face string

const (
	FaceFront   Face = "front"
	FaceInfo    Face = "info"
	FacePayment Face = "payment"
)

// The guard window slightly exceeds the animation so a new flip cannot
// start while the previous one still tears. Shortening the animation
// without the guard is safe; the reverse is not.
const (
	AnimationDuration = 800 * time.Millisecond
	GuardWindow       = 850 * time.Millisecond
)

var (
	// ErrFlipInProgress rejects a trigger landing inside the guard window.
	ErrFlipInProgress = errors.New("flip in progress")
	// ErrInvalidTransition rejects a transition the card does not have,
	// e.g. info directly to payment.
	ErrInvalidTransition = errors.New("invalid face transition")
)

// Machine tracks the visible face of one card. The guard is a timer-based
// lock, not an animation-completion callback: a transition marks the
// machine flipping until the window elapses and every trigger inside the
// window is a no-op. Safe for concurrent triggers.
type Machine struct {
	mu       sync.Mutex
	face     Face
	lockedTo time.Time
	now      func() time.Time
}

// NewMachine creates a machine showing the front face.
func NewMachine() *Machine {
	return &Machine{
		face: FaceFront,
		now:  time.Now,
	}
}

// Face reports the currently shown face.
func (m *Machine) Face() Face {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.face
}

// Flipping reports whether the guard window is open.
func (m *Machine) Flipping() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flippingLocked()
}

// Toggle handles a generic tap anywhere on the card: front and info swap.
// The payment face ignores generic taps; it is only left via Back. Returns
// true when the face changed.
func (m *Machine) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.flippingLocked() {
		return false
	}
	switch m.face {
	case FaceFront:
		m.transitionLocked(FaceInfo)
	case FaceInfo:
		m.transitionLocked(FaceFront)
	default:
		return false
	}
	return true
}

// Tap applies the hit-testing policy before toggling: taps landing on an
// interactive subtree never flip the card.
func (m *Machine) Tap(target TapTarget) bool {
	if target.Interactive() {
		return false
	}
	return m.Toggle()
}

// OpenPayment shows the payment face. Only reachable from front; the info
// face must return to front first.
func (m *Machine) OpenPayment() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.flippingLocked() {
		return ErrFlipInProgress
	}
	if m.face != FaceFront {
		return ErrInvalidTransition
	}
	m.transitionLocked(FacePayment)
	return nil
}

// Back returns from the payment face to the front. The only way out of
// payment.
func (m *Machine) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.flippingLocked() {
		return ErrFlipInProgress
	}
	if m.face != FacePayment {
		return ErrInvalidTransition
	}
	m.transitionLocked(FaceFront)
	return nil
}

func (m *Machine) flippingLocked() bool {
	return m.now().Before(m.lockedTo)
}

func (m *Machine) transitionLocked(to Face) {
	m.face = to
	m.lockedTo = m.now().Add(GuardWindow)
}
