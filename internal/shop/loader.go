package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/appetiteclub/apt"
)

// RevalidateWindow is how long a remote config fetch stays fresh before the
// loader tries the admin panel again.
const RevalidateWindow = 30 * time.Second

// Loader resolves the effective shop configuration: the remote admin-panel
// config merged over the bundled one, falling back to the bundled config
// when the panel is unset or unreachable.
type Loader struct {
	base       Config
	adminURL   string
	httpClient *http.Client
	logger     apt.Logger

	mu        sync.RWMutex
	cached    *Config
	fetchedAt time.Time
	now       func() time.Time
}

// NewLoader creates a loader over a bundled config. An empty adminURL
// disables remote fetching entirely.
func NewLoader(base Config, adminURL string, logger apt.Logger) *Loader {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Loader{
		base:     base,
		adminURL: adminURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
		now:    time.Now,
	}
}

// Load returns the effective configuration. Remote failures degrade to the
// bundled config and are logged once per attempt, never surfaced to the
// caller.
func (l *Loader) Load(ctx context.Context) Config {
	if l.adminURL == "" {
		return l.base
	}

	l.mu.RLock()
	if l.cached != nil && l.now().Sub(l.fetchedAt) < RevalidateWindow {
		cfg := *l.cached
		l.mu.RUnlock()
		return cfg
	}
	l.mu.RUnlock()

	merged, err := l.fetch(ctx)
	if err != nil {
		l.logger.Debug("remote config unavailable, using bundled config", "error", err)
		return l.base
	}

	l.mu.Lock()
	l.cached = &merged
	l.fetchedAt = l.now()
	l.mu.Unlock()
	return merged
}

// fetch pulls the admin-panel overrides and merges them over the bundled
// config. Fields absent remotely keep their bundled values.
func (l *Loader) fetch(ctx context.Context) (Config, error) {
	endpoint := fmt.Sprintf("%s/api/public/config?shop_slug=%s", l.adminURL, url.QueryEscape(l.base.Slug))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Config{}, fmt.Errorf("create request failed: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return Config{}, fmt.Errorf("admin panel request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Config{}, fmt.Errorf("admin panel returned status %d", resp.StatusCode)
	}

	var body struct {
		Config json.RawMessage `json:"config"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Config{}, fmt.Errorf("failed to decode admin panel response: %w", err)
	}
	if len(body.Config) == 0 || string(body.Config) == "{}" || string(body.Config) == "null" {
		return Config{}, fmt.Errorf("admin panel returned empty config")
	}

	merged := l.base
	if err := json.Unmarshal(body.Config, &merged); err != nil {
		return Config{}, fmt.Errorf("failed to merge remote config: %w", err)
	}
	return merged, nil
}
