package form

import (
	"context"
	"testing"

	"adminclient/entity"
	"adminclient/ui"
	"adminclient/ui/uitest"
)

func deviceControls() []*uitest.Control {
	return []*uitest.Control{
		{FieldName: "mac_address", FieldKind: ui.KindText},
		{FieldName: "device_type", FieldKind: ui.KindText},
	}
}

func newGuardedHarness(t *testing.T) (*harness, *uitest.Control) {
	t.Helper()
	h := newHarness(t, entity.SmartDevices, deviceControls())
	AttachMACGuard(h.ctl, h.api)
	mac, _ := h.form.Control("mac_address")
	return h, mac.(*uitest.Control)
}

func TestMACGuardRejectsBadFormat(t *testing.T) {
	h, mac := newGuardedHarness(t)

	mac.SetValue("not-a-mac")
	mac.Blur()

	if !mac.Invalid {
		t.Error("control should be marked invalid")
	}
	if !h.form.BannerUp || len(h.form.Banner) != 1 || h.form.Banner[0] != msgMACFormat {
		t.Errorf("banner = %v", h.form.Banner)
	}
	if len(h.api.fetches) != 0 {
		t.Error("format failure must not hit the backend")
	}
}

func TestMACGuardAcceptsBothSeparators(t *testing.T) {
	h, mac := newGuardedHarness(t)

	for _, value := range []string{"AA:BB:CC:DD:EE:FF", "aa-bb-cc-dd-ee-ff"} {
		mac.Focus()
		mac.SetValue(value)
		mac.Blur()
		if mac.Invalid {
			t.Errorf("%q should pass the format check", value)
		}
	}
	if h.form.BannerUp {
		t.Errorf("banner = %v", h.form.Banner)
	}
}

func TestMACGuardFlagsDuplicate(t *testing.T) {
	h, mac := newGuardedHarness(t)
	h.api.records["AA:BB:CC:DD:EE:FF"] = entity.Record{"mac_address": "AA:BB:CC:DD:EE:FF"}

	mac.SetValue("aa:bb:cc:dd:ee:ff")
	mac.Blur()

	if !mac.Invalid || mac.InvalidMsg != msgMACTaken {
		t.Errorf("invalid=%v msg=%q", mac.Invalid, mac.InvalidMsg)
	}
	// The probe uppercases before asking.
	if len(h.api.fetches) != 1 || h.api.fetches[0] != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("fetches = %v", h.api.fetches)
	}
}

func TestMACGuardSkipsOwnRecordOnEdit(t *testing.T) {
	h, mac := newGuardedHarness(t)
	h.api.records["AA:BB:CC:DD:EE:FF"] = entity.Record{"mac_address": "AA:BB:CC:DD:EE:FF"}

	if err := h.ctl.OpenEdit(context.Background(), "AA:BB:CC:DD:EE:FF"); err != nil {
		t.Fatalf("OpenEdit: %v", err)
	}
	probes := len(h.api.fetches)

	mac.Blur()

	if mac.Invalid {
		t.Error("keeping your own MAC must not be flagged as taken")
	}
	if len(h.api.fetches) != probes {
		t.Error("own-record blur should skip the uniqueness probe")
	}
}

func TestMACGuardFocusClearsState(t *testing.T) {
	h, mac := newGuardedHarness(t)

	mac.SetValue("garbage")
	mac.Blur()
	if !mac.Invalid {
		t.Fatal("precondition: control invalid")
	}

	mac.Focus()
	if mac.Invalid || h.form.BannerUp {
		t.Error("focus should clear the invalid state and banner")
	}
}

func TestMACGuardEmptyValueIsQuiet(t *testing.T) {
	h, mac := newGuardedHarness(t)

	mac.SetValue("   ")
	mac.Blur()

	if mac.Invalid || h.form.BannerUp || len(h.api.fetches) != 0 {
		t.Error("blank MAC should neither flag nor probe")
	}
}

func TestFormatMAC(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"aabbccddeeff", "AA:BB:CC:DD:EE:FF"},
		{"aa-bb-cc-dd-ee-ff", "AA:BB:CC:DD:EE:FF"},
		{"a a b b", "AA:BB"},
		{"aabbccddeeff00112233", "AA:BB:CC:DD:EE:FF"},
		{"zz", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := FormatMAC(c.in); got != c.want {
			t.Errorf("FormatMAC(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
