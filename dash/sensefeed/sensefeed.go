// Package sensefeed produces sensor samples for the dashboard: a parser for
// the serial telemetry line, a host-side serial reader and a demo generator
// that sweeps every gauge through its color bands.
package sensefeed

import (
	"errors"
	"strconv"
	"strings"

	"obdash/dash/sensor"
)

// fieldCount is the number of comma-separated values in one telemetry line:
// boost bar, AFR, battery volts, coolant, oil, DSG, IAT and EGT in that
// order.
const fieldCount = 8

var errFieldCount = errors.New("sensefeed: want 8 comma-separated values")

// ParseLine decodes one telemetry line into a sample record.
func ParseLine(line string) (sensor.Samples, error) {
	var s sensor.Samples
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != fieldCount {
		return s, errFieldCount
	}
	var vals [fieldCount]float32
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return s, err
		}
		vals[i] = float32(v)
	}
	s.BoostBar = vals[0]
	s.AFR = vals[1]
	s.BatteryV = vals[2]
	s.CoolantC = vals[3]
	s.OilC = vals[4]
	s.DSGC = vals[5]
	s.IATC = vals[6]
	s.EGTC = vals[7]
	return s, nil
}
