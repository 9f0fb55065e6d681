package component

import "testing"

func TestBatteryAddClamps(t *testing.T) {
	b := BatteryComponent{Charge: 95, Max: 100}
	if got := b.Add(10); got != 5 {
		t.Errorf("applied = %v, want 5", got)
	}
	if b.Charge != 100 {
		t.Errorf("charge = %v, want 100", b.Charge)
	}
	if got := b.Add(-250); got != -100 {
		t.Errorf("applied = %v, want -100", got)
	}
	if !b.Empty() {
		t.Error("battery should be empty")
	}
}

func TestBatteryRatio(t *testing.T) {
	if r := (BatteryComponent{Charge: 25, Max: 100}).Ratio(); r != 0.25 {
		t.Errorf("ratio = %v", r)
	}
	if r := (BatteryComponent{}).Ratio(); r != 0 {
		t.Errorf("zero-capacity ratio = %v", r)
	}
}
