package config

import (
	"testing"
	"time"

	kit "winback/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	core := root.Prefix("CORE_")
	if got := core.key("WORKERS"); got != "CORE_WORKERS" {
		t.Fatalf("key() = %q, want %q", got, "CORE_WORKERS")
	}
	// nested prefix
	wb := core.Prefix("WINBACK_")
	if got := wb.key("WINDOW_MONTHS"); got != "CORE_WINBACK_WINDOW_MONTHS" {
		t.Fatalf("nested key() = %q, want %q", got, "CORE_WINBACK_WINDOW_MONTHS")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  winback ")
	got := c.MustString("NAME")
	if got != "winback" {
		t.Fatalf("MustString = %q, want %q", got, "winback")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_WORKERS", "  8 ")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d, want %d", got, 8)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMustTime(t *testing.T) {
	c := New().Prefix("T_")
	t.Setenv("T_REF", " 2026-08-01 ")
	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if got := c.MustTime("REF"); !got.Equal(want) {
		t.Fatalf("MustTime = %v, want %v", got, want)
	}
	kit.MustPanic(t, func() { _ = c.MustTime("MISSING") })
	t.Setenv("T_BAD", "yesterday")
	kit.MustPanic(t, func() { _ = c.MustTime("BAD") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "x")
	t.Setenv("REQ_B", "y")
	// should not panic
	c.Require("A", "B")

	// missing C should panic
	kit.MustPanic(t, func() { c.Require("A", "C") })

	// whitespace counts as missing
	t.Setenv("REQ_WS", "   ")
	kit.MustPanic(t, func() { c.Require("WS") })
}

// May* fallbacks

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q, want %q", got, "def")
	}
	t.Setenv("S_NAME", " winback ")
	if got := c.MayString("NAME", "x"); got != "winback" {
		t.Fatalf("MayString value = %q, want %q", got, "winback")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d, want %d", got, 9)
	}
	t.Setenv("I_OK", " 7 ")
	if got := c.MayInt("OK", 0); got != 7 {
		t.Fatalf("MayInt ok = %d, want %d", got, 7)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad -> default = %d, want %d", got, 3)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if got := c.MayBool("MISSING", true); got != true {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("B_T", "true")
	if got := c.MayBool("T", false); got != true {
		t.Fatalf("MayBool true expected")
	}
	t.Setenv("B_BAD", "nope")
	if got := c.MayBool("BAD", false); got != false {
		t.Fatalf("MayBool bad -> default false expected")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("DUR_")
	if got := c.MayDuration("MISS", 5*time.Second); got != 5*time.Second {
		t.Fatalf("MayDuration default expected")
	}
	t.Setenv("DUR_OK", "150ms")
	if got := c.MayDuration("OK", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration ok = %v, want %v", got, 150*time.Millisecond)
	}
	t.Setenv("DUR_BAD", "nope")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad -> default expected")
	}
}

func TestMayTime(t *testing.T) {
	c := New().Prefix("MT_")
	def := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := c.MayTime("MISS", def); !got.Equal(def) {
		t.Fatalf("MayTime default expected")
	}
	t.Setenv("MT_OK", "2026-08-01T12:30:00Z")
	want := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	if got := c.MayTime("OK", def); !got.Equal(want) {
		t.Fatalf("MayTime ok = %v, want %v", got, want)
	}
	t.Setenv("MT_BAD", "nope")
	if got := c.MayTime("BAD", def); !got.Equal(def) {
		t.Fatalf("MayTime bad -> default expected")
	}
}

func TestParseTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-08-01", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"2026-08-01T10:00:00Z", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
		{"2026-08-01T10:00:00.5Z", time.Date(2026, 8, 1, 10, 0, 0, 500000000, time.UTC)},
		{" 2026-08-01T12:00:00+02:00 ", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ParseTime(c.in)
		if err != nil {
			t.Fatalf("ParseTime(%q): %v", c.in, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("ParseTime(%q) = %v, want %v", c.in, got, c.want)
		}
		if got.Location() != time.UTC {
			t.Fatalf("ParseTime(%q) not normalized to UTC", c.in)
		}
	}

	if _, err := ParseTime("08/01/2026"); err == nil {
		t.Fatalf("ParseTime should reject unsupported layouts")
	}
}
