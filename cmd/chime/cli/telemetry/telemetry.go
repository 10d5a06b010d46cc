// Package telemetry reports anonymous usage events to PostHog. It is inert
// unless the build carries an API key, the user has consented, and the
// opt-out env var is unset; every call on an inert client is a no-op, so
// callers never branch on whether telemetry is live.
package telemetry

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/posthog/posthog-go"
)

// apiKey is injected at release build time via
// -ldflags "-X github.com/chimeio/chime/cmd/chime/cli/telemetry.apiKey=...".
// Development builds leave it empty and send nothing.
var apiKey = ""

const endpoint = "https://eu.i.posthog.com"

// EnvOptOut disables telemetry regardless of recorded consent when set to
// any non-empty value.
const EnvOptOut = "CHIME_TELEMETRY_OPTOUT"

// Client sends usage events. The zero value and nil are both inert.
type Client struct {
	ph         posthog.Client
	distinctID string
}

// New returns a client honoring consent, the opt-out env var, and the
// presence of a build-time API key. consent follows the state file
// convention: nil means never asked, which counts as no.
func New(consent *bool) *Client {
	if apiKey == "" || consent == nil || !*consent || os.Getenv(EnvOptOut) != "" {
		return &Client{}
	}
	ph, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return &Client{}
	}
	// Hashed, app-scoped machine ID; falls back to an anonymous bucket when
	// the machine ID is unavailable (containers, stripped-down systems).
	id, err := machineid.ProtectedID("chime")
	if err != nil {
		id = "anonymous"
	}
	return &Client{ph: ph, distinctID: id}
}

// Capture enqueues one event. Errors are dropped; telemetry never affects
// the command outcome.
func (c *Client) Capture(event string, props map[string]any) {
	if c == nil || c.ph == nil {
		return
	}
	p := posthog.NewProperties()
	for k, v := range props {
		p.Set(k, v)
	}
	_ = c.ph.Enqueue(posthog.Capture{
		DistinctId: c.distinctID,
		Event:      event,
		Properties: p,
	})
}

// Close flushes pending events.
func (c *Client) Close() {
	if c == nil || c.ph == nil {
		return
	}
	_ = c.ph.Close()
}
