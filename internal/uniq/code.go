// Package uniq produces short codes that differ between calls made in
// different microseconds.
package uniq

import (
	"strconv"
	"strings"
	"time"
)

// Code returns the current Unix time in seconds, fractional part included,
// with the decimal point removed.
func Code() string {
	return FromTime(time.Now())
}

// FromTime is Code for an explicit instant. A whole second keeps one zero
// fractional digit, so 1700000000.0 gives "17000000000".
func FromTime(t time.Time) string {
	secs := strconv.FormatFloat(float64(t.UnixMicro())/1e6, 'f', -1, 64)
	if !strings.Contains(secs, ".") {
		secs += ".0"
	}
	return strings.Replace(secs, ".", "", 1)
}
