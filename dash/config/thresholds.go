package config

// Sensor thresholds. Each chain reads as ascending buckets: a value below
// the first constant is the coldest bucket, a value at or above the last is
// critical (blink + shake). Ordering is validated in init; the dashboard
// refuses to start with a misconfigured chain.

// Oil / DSG temperature (shared chain, degrees C).
const (
	// Below this the oil is not yet at operating temperature (LOW badge).
	OilLowTemp float32 = 75.0

	OilDSGElevated float32 = 90.0
	OilDSGHigh     float32 = 100.0
	OilDSGCritical float32 = 110.0
)

// Coolant temperature (degrees C).
const (
	CoolantColdMax  float32 = 75.0
	CoolantCritical float32 = 90.0
)

// Intake air temperature (degrees C).
const (
	IATExtremeCold float32 = -20.0
	IATCold        float32 = 0.0
	IATWarm        float32 = 25.0
	IATHot         float32 = 45.0
	IATCritical    float32 = 60.0
)

// Exhaust gas temperature (degrees C).
const (
	EGTColdMax  float32 = 300.0
	EGTSpirited float32 = 500.0
	EGTHighLoad float32 = 700.0
	EGTCritical float32 = 850.0

	// Above this the pre-cat sensor reading threatens the manifold itself;
	// raises the blinking warning popup.
	EGTDangerManifold float32 = 1100.0
)

// Battery voltage (volts).
const (
	BattCritical float32 = 12.0
	BattWarning  float32 = 12.5
)

// Air-fuel ratio (gasoline AFR, not lambda).
const (
	AFRRichAF       float32 = 12.0
	AFRRich         float32 = 14.0
	AFROptimalMax   float32 = 14.9
	AFRLeanCritical float32 = 15.5

	AFRStoich float32 = 14.7
)

// Boost pressure.
const (
	BoostEasterEggBar float32 = 1.95
	BoostEasterEggPSI float32 = 29.0

	BarToPSI float32 = 14.5038
)

// IsCriticalBattery reports whether the voltage is below the critical
// threshold.
func IsCriticalBattery(volts float32) bool { return volts < BattCritical }

func init() {
	mustAscend("oil/dsg", OilLowTemp, OilDSGElevated, OilDSGHigh, OilDSGCritical)
	mustAscend("coolant", CoolantColdMax, CoolantCritical)
	mustAscend("iat", IATExtremeCold, IATCold, IATWarm, IATHot, IATCritical)
	mustAscend("egt", EGTColdMax, EGTSpirited, EGTHighLoad, EGTCritical, EGTDangerManifold)
	mustAscend("battery", BattCritical, BattWarning)
	mustAscend("afr", AFRRichAF, AFRRich, AFROptimalMax, AFRLeanCritical)
	mustAscend("afr stoich", AFRRich, AFRStoich, AFROptimalMax)
}

func mustAscend(chain string, vals ...float32) {
	for i := 1; i < len(vals); i++ {
		if !(vals[i-1] < vals[i]) {
			panic("config: threshold chain out of order: " + chain)
		}
	}
}
