package domain

import (
	"encoding/json"
	"testing"
)

func TestRegimeFor(t *testing.T) {
	tests := []struct {
		re   float64
		want Regime
	}{
		{re: 1, want: Laminar},
		{re: 2099.999, want: Laminar},
		{re: 2100, want: Turbulent},
		{re: 1e6, want: Turbulent},
	}
	for _, tt := range tests {
		if got := RegimeFor(tt.re); got != tt.want {
			t.Errorf("RegimeFor(%v) = %v, want %v", tt.re, got, tt.want)
		}
	}
}

func TestPipeTypeFor(t *testing.T) {
	if got := PipeTypeFor(0); got != Smooth {
		t.Errorf("PipeTypeFor(0) = %v, want Smooth", got)
	}
	if got := PipeTypeFor(0.01); got != Rough {
		t.Errorf("PipeTypeFor(0.01) = %v, want Rough", got)
	}
}

func TestEnumText(t *testing.T) {
	b, err := json.Marshal(struct {
		R Regime   `json:"r"`
		P PipeType `json:"p"`
	}{Turbulent, Rough})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"r":"Turbulent","p":"Rough"}` {
		t.Errorf("Marshal = %s", b)
	}

	var r Regime
	if err := r.UnmarshalText([]byte("Laminar")); err != nil || r != Laminar {
		t.Errorf("UnmarshalText(Laminar) = %v, %v", r, err)
	}
	if err := r.UnmarshalText([]byte("Transitional")); err == nil {
		t.Error("UnmarshalText(Transitional) should fail")
	}
	var p PipeType
	if err := p.UnmarshalText([]byte("Smooth")); err != nil || p != Smooth {
		t.Errorf("UnmarshalText(Smooth) = %v, %v", p, err)
	}
	if _, err := Regime(7).MarshalText(); err == nil {
		t.Error("MarshalText of unknown regime should fail")
	}
}

func TestBlasiusExtrapolated(t *testing.T) {
	tests := []struct {
		name string
		r    FlowResult
		want bool
	}{
		{"smooth below range", FlowResult{Reynolds: 5e4, Regime: Turbulent, PipeType: Smooth}, false},
		{"smooth at limit", FlowResult{Reynolds: 1e5, Regime: Turbulent, PipeType: Smooth}, true},
		{"rough above range", FlowResult{Reynolds: 1e6, Regime: Turbulent, PipeType: Rough}, false},
		{"laminar", FlowResult{Reynolds: 1000, Regime: Laminar, PipeType: Smooth}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.BlasiusExtrapolated(); got != tt.want {
				t.Errorf("BlasiusExtrapolated() = %v, want %v", got, tt.want)
			}
		})
	}
}
