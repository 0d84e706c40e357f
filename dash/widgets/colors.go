package widgets

import (
	"image/color"

	"obdash/dash/config"
)

// Background buckets per sensor. Lower bound inclusive, upper exclusive;
// the chains are validated in config.

// OilDSGColor buckets an oil or DSG temperature.
func OilDSGColor(t float32) color.RGBA {
	switch {
	case t < config.OilDSGElevated:
		return Black
	case t < config.OilDSGHigh:
		return Yellow
	case t < config.OilDSGCritical:
		return Orange
	default:
		return Red
	}
}

// IsCriticalOilDSG reports the blink+shake state for oil and DSG.
func IsCriticalOilDSG(t float32) bool { return t >= config.OilDSGCritical }

// IsLowOil reports whether the oil is still below operating temperature.
func IsLowOil(t float32) bool { return t < config.OilLowTemp }

// CoolantColor buckets a coolant temperature: orange while warming, green
// in the working band, red overheating.
func CoolantColor(t float32) color.RGBA {
	switch {
	case t < config.CoolantColdMax:
		return Orange
	case t < config.CoolantCritical:
		return Green
	default:
		return Red
	}
}

// IsCriticalCoolant reports coolant overheating.
func IsCriticalCoolant(t float32) bool { return t >= config.CoolantCritical }

// IATColor buckets an intake air temperature.
func IATColor(t float32) color.RGBA {
	switch {
	case t <= config.IATExtremeCold:
		return Red
	case t < config.IATCold:
		return Blue
	case t < config.IATWarm:
		return Black
	case t < config.IATHot:
		return Yellow
	case t < config.IATCritical:
		return Orange
	default:
		return Red
	}
}

// IsCriticalIAT covers both ends: severe heat soak and intake icing risk.
func IsCriticalIAT(t float32) bool {
	return t >= config.IATCritical || t <= config.IATExtremeCold
}

// EGTColor buckets an exhaust gas temperature.
func EGTColor(t float32) color.RGBA {
	switch {
	case t < config.EGTColdMax:
		return Blue
	case t < config.EGTSpirited:
		return Black
	case t < config.EGTHighLoad:
		return Yellow
	case t < config.EGTCritical:
		return Orange
	default:
		return Red
	}
}

// IsCriticalEGT reports the blink+shake state for EGT.
func IsCriticalEGT(t float32) bool { return t >= config.EGTCritical }

// BatteryColor buckets a battery voltage.
func BatteryColor(v float32) color.RGBA {
	switch {
	case v < config.BattCritical:
		return Red
	case v < config.BattWarning:
		return Orange
	default:
		return Black
	}
}

// BatteryStatus is the short status line under the voltage.
func BatteryStatus(v float32) string {
	switch {
	case v < config.BattCritical:
		return "LOW"
	case v < config.BattWarning:
		return "WEAK"
	case v > 13.2:
		return "CHARGING"
	default:
		return "OK"
	}
}

// AFRColor buckets an air-fuel ratio.
func AFRColor(afr float32) color.RGBA {
	switch {
	case afr < config.AFRRichAF:
		return Blue
	case afr < config.AFRRich:
		return DarkTeal
	case afr <= config.AFROptimalMax:
		return Green
	case afr <= config.AFRLeanCritical:
		return Orange
	default:
		return Red
	}
}

// AFRStatus is the mixture description under the ratio.
func AFRStatus(afr float32) string {
	switch {
	case afr < config.AFRRichAF:
		return "RICH AF"
	case afr < config.AFRRich:
		return "RICH"
	case afr <= config.AFROptimalMax:
		return "OPTIMAL"
	case afr <= config.AFRLeanCritical:
		return "LEAN"
	default:
		return "LEAN AF"
	}
}

// IsCriticalAFR reports a dangerously lean mixture.
func IsCriticalAFR(afr float32) bool { return afr > config.AFRLeanCritical }
