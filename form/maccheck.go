package form

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"adminclient/client"
)

// macPattern accepts the two separator styles the portal allows.
var macPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`)

// MAC guard messages.
const (
	msgMACFormat = "O 'MAC Address' deve estar no formato XX:XX:XX:XX:XX:XX ou XX-XX-XX-XX-XX-XX."
	msgMACTaken  = "Já existe um dispositivo com este 'MAC Address'."
)

// AttachMACGuard wires the smart-device MAC field with blur-time format
// checking plus a live uniqueness probe against the backend. This is
// deliberately smart-device-specific: the MAC is the one identity the
// user types by hand, and the probe's "editing this very record" skip
// rule only makes sense there.
func AttachMACGuard(c *Controller, api EntityAPI) {
	ctl, ok := c.form.Control("mac_address")
	if !ok {
		return
	}

	ctl.OnFocus(func() {
		c.form.ClearError()
		ctl.ClearInvalid()
	})

	ctl.OnBlur(func() {
		value := strings.ToUpper(strings.TrimSpace(ctl.Value()))
		c.form.ClearError()
		if value == "" {
			return
		}

		if !macPattern.MatchString(value) {
			c.form.ShowError([]string{msgMACFormat})
			ctl.SetInvalid(msgMACFormat)
			return
		}

		// Editing a device and keeping its own MAC is fine.
		if c.Mode() == OpUpdate && strings.EqualFold(c.TargetID(), value) {
			ctl.ClearInvalid()
			return
		}

		_, err := api.FetchOne(context.Background(), value)
		switch {
		case err == nil:
			c.form.ShowError([]string{msgMACTaken})
			ctl.SetInvalid(msgMACTaken)
		case client.IsNotFound(err):
			ctl.ClearInvalid()
		default:
			// Transport trouble: do not block typing, just log it.
			c.logger.Warn("mac uniqueness probe failed", zap.Error(err))
		}
	})
}

// FormatMAC normalizes raw input into colon-separated uppercase pairs,
// the way the device form's input mask does.
func FormatMAC(raw string) string {
	var hex []rune
	for _, r := range strings.ToUpper(raw) {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F') {
			hex = append(hex, r)
			if len(hex) == 12 {
				break
			}
		}
	}
	var b strings.Builder
	for i, r := range hex {
		if i > 0 && i%2 == 0 {
			b.WriteByte(':')
		}
		b.WriteRune(r)
	}
	return b.String()
}
