package payment

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeNavigator struct {
	mu        sync.Mutex
	navigated []string
	fallbacks []string
	focus     bool
	navErr    error
	checked   chan struct{}
	done      chan struct{}
}

func newFakeNavigator(focus bool) *fakeNavigator {
	return &fakeNavigator{
		focus:   focus,
		checked: make(chan struct{}, 1),
		done:    make(chan struct{}, 1),
	}
}

func (f *fakeNavigator) Navigate(uri string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.navErr != nil {
		return f.navErr
	}
	f.navigated = append(f.navigated, uri)
	return nil
}

func (f *fakeNavigator) OpenFallback(uri string) error {
	f.mu.Lock()
	f.fallbacks = append(f.fallbacks, uri)
	f.mu.Unlock()
	select {
	case f.done <- struct{}{}:
	default:
	}
	return nil
}

func (f *fakeNavigator) HasFocus() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case f.checked <- struct{}{}:
	default:
	}
	return f.focus
}

func (f *fakeNavigator) fallbackCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fallbacks)
}

func testPlan() Plan {
	return PlanFor(AppPaytm, Identity{UpiID: "shop@oksbi", UpiName: "Shop"}, 100)
}

func TestPlanFor(t *testing.T) {
	plan := testPlan()

	if plan.App != AppPaytm {
		t.Errorf("PlanFor() App = %v, want %v", plan.App, AppPaytm)
	}
	if want := "paytmmp://pay?pa=shop%40oksbi&pn=Shop&cu=INR&am=100"; plan.AppURI != want {
		t.Errorf("PlanFor() AppURI = %q, want %q", plan.AppURI, want)
	}
	if want := "upi://pay?pa=shop%40oksbi&pn=Shop&cu=INR&am=100"; plan.FallbackURI != want {
		t.Errorf("PlanFor() FallbackURI = %q, want %q", plan.FallbackURI, want)
	}
}

func TestHandoffFallsBackWhenFocusRetained(t *testing.T) {
	nav := newFakeNavigator(true)
	tick := make(chan time.Time, 1)

	h := NewHandoff(nav, nil)
	h.after = func(time.Duration) <-chan time.Time { return tick }

	plan := testPlan()
	h.Run(plan)

	tick <- time.Now()

	select {
	case <-nav.done:
	case <-time.After(time.Second):
		t.Fatal("fallback was never opened")
	}

	nav.mu.Lock()
	defer nav.mu.Unlock()
	if len(nav.navigated) != 1 || nav.navigated[0] != plan.AppURI {
		t.Errorf("navigated = %v, want [%q]", nav.navigated, plan.AppURI)
	}
	if len(nav.fallbacks) != 1 || nav.fallbacks[0] != plan.FallbackURI {
		t.Errorf("fallbacks = %v, want [%q]", nav.fallbacks, plan.FallbackURI)
	}
}

func TestHandoffNoFallbackWhenFocusLost(t *testing.T) {
	nav := newFakeNavigator(false)
	tick := make(chan time.Time, 1)

	h := NewHandoff(nav, nil)
	h.after = func(time.Duration) <-chan time.Time { return tick }

	h.Run(testPlan())
	tick <- time.Now()

	// Wait for the focus probe, then confirm no fallback happened.
	select {
	case <-nav.checked:
	case <-time.After(time.Second):
		t.Fatal("focus was never checked")
	}

	if got := nav.fallbackCount(); got != 0 {
		t.Errorf("fallback opened %d times, want 0", got)
	}
}

func TestHandoffNavigateErrorOpensFallbackImmediately(t *testing.T) {
	nav := newFakeNavigator(true)
	nav.navErr = errors.New("scheme not registered")

	h := NewHandoff(nav, nil)
	// No tick is ever sent; the fallback must not depend on the timer.
	h.after = func(time.Duration) <-chan time.Time { return make(chan time.Time) }

	plan := testPlan()
	h.Run(plan)

	if got := nav.fallbackCount(); got != 1 {
		t.Fatalf("fallback opened %d times, want 1", got)
	}
	nav.mu.Lock()
	defer nav.mu.Unlock()
	if nav.fallbacks[0] != plan.FallbackURI {
		t.Errorf("fallback = %q, want %q", nav.fallbacks[0], plan.FallbackURI)
	}
}
