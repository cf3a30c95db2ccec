package fonts

import (
	"encoding/base64"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestMeasurer(t *testing.T) {
	m, err := NewMeasurer(14)
	if err != nil {
		t.Fatalf("NewMeasurer() error = %v", err)
	}
	defer m.Close()

	if got := m.MeasureLabel(""); got != 0 {
		t.Errorf("MeasureLabel(\"\") = %v, want 0", got)
	}

	one := m.MeasureLabel("A")
	if one <= 0 {
		t.Fatalf("MeasureLabel(\"A\") = %v, want > 0", one)
	}
	// Go Mono advances are about 0.6em.
	if one < 7 || one > 10 {
		t.Errorf("MeasureLabel(\"A\") = %v, want roughly 8.4", one)
	}

	// Monospaced: width grows linearly with length.
	tests := []string{"IS A...", "PRODUCT DESIGNER", "UI/UX ENGINEER"}
	for _, s := range tests {
		got := m.MeasureLabel(s)
		want := one * float64(len(s))
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("MeasureLabel(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestMeasurerScalesWithSize(t *testing.T) {
	small, err := NewMeasurer(10)
	if err != nil {
		t.Fatal(err)
	}
	large, err := NewMeasurer(20)
	if err != nil {
		t.Fatal(err)
	}

	a, b := small.MeasureLabel("STAR"), large.MeasureLabel("STAR")
	if math.Abs(b-2*a) > 0.1 {
		t.Errorf("size 20 width %v, want about twice size 10 width %v", b, a)
	}
}

func TestTTFBase64(t *testing.T) {
	got := TTFBase64()
	raw, err := base64.StdEncoding.DecodeString(got)
	if err != nil {
		t.Fatalf("TTFBase64() is not valid base64: %v", err)
	}
	if len(raw) != len(gomono.TTF) {
		t.Errorf("decoded length = %d, want %d", len(raw), len(gomono.TTF))
	}
	if TTFBase64() != got {
		t.Error("TTFBase64() should be stable across calls")
	}
}
