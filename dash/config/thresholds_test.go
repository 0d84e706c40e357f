package config

import (
	"math"
	"testing"
)

func TestThresholdChainsAscend(t *testing.T) {
	chains := []struct {
		name string
		vals []float32
	}{
		{"oil/dsg", []float32{OilLowTemp, OilDSGElevated, OilDSGHigh, OilDSGCritical}},
		{"coolant", []float32{CoolantColdMax, CoolantCritical}},
		{"iat", []float32{IATExtremeCold, IATCold, IATWarm, IATHot, IATCritical}},
		{"egt", []float32{EGTColdMax, EGTSpirited, EGTHighLoad, EGTCritical, EGTDangerManifold}},
		{"battery", []float32{BattCritical, BattWarning}},
		{"afr", []float32{AFRRichAF, AFRRich, AFROptimalMax, AFRLeanCritical}},
	}
	for _, c := range chains {
		for i := 1; i < len(c.vals); i++ {
			if !(c.vals[i-1] < c.vals[i]) {
				t.Errorf("%s chain not ascending at index %d: %v", c.name, i, c.vals)
			}
		}
	}
}

func TestMustAscendPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("mustAscend() did not panic on a descending chain")
		}
	}()
	mustAscend("bogus", 2.0, 1.0)
}

func TestStoichInOptimalRange(t *testing.T) {
	if !(AFRStoich > AFRRich && AFRStoich < AFROptimalMax) {
		t.Fatalf("AFRStoich = %v, want inside (%v, %v)", AFRStoich, AFRRich, AFROptimalMax)
	}
}

func TestBarToPSIConversion(t *testing.T) {
	if math.Abs(float64(BarToPSI)-14.5) > 0.1 {
		t.Fatalf("BarToPSI = %v, want ~14.5", BarToPSI)
	}
	barAsPSI := float64(BoostEasterEggBar * BarToPSI)
	if math.Abs(barAsPSI-float64(BoostEasterEggPSI)) > 1.0 {
		t.Fatalf("easter egg thresholds disagree: %.2f psi vs %.2f psi", barAsPSI, BoostEasterEggPSI)
	}
}

func TestIsCriticalBattery(t *testing.T) {
	tests := []struct {
		volts float32
		want  bool
	}{
		{11.0, true},
		{11.9, true},
		{12.0, false},
		{12.5, false},
		{14.0, false},
	}
	for _, tt := range tests {
		if got := IsCriticalBattery(tt.volts); got != tt.want {
			t.Errorf("IsCriticalBattery(%v) got = %v, want %v", tt.volts, got, tt.want)
		}
	}
}

func TestLayoutTilesScreen(t *testing.T) {
	if 4*ColWidth != ScreenWidth {
		t.Fatalf("4*ColWidth = %d, want %d", 4*ColWidth, ScreenWidth)
	}
	if HeaderHeight+2*RowHeight != ScreenHeight {
		t.Fatalf("header + 2 rows = %d, want %d", HeaderHeight+2*RowHeight, ScreenHeight)
	}
	if FrameBytes%4 != 0 {
		t.Fatalf("FrameBytes = %d, want multiple of 4", FrameBytes)
	}
}
