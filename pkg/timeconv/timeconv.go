// Package timeconv converts between calendar time and the continuous
// day-count scales used by the engine. All arithmetic inside the engine is
// done on Modified Julian Date values; these helpers are pure functions.
package timeconv

import (
	"math"
	"time"
)

const (
	// MJDEpochJD is the Julian Date of MJD 0 (1858-11-17T00:00 UT).
	MJDEpochJD = 2400000.5

	// unixEpochMJD is the MJD of 1970-01-01T00:00 UTC.
	unixEpochMJD = 40587.0

	secondsPerDay = 86400.0
)

// JDToMJD converts a Julian Date to Modified Julian Date.
func JDToMJD(jd float64) float64 {
	return jd - MJDEpochJD
}

// MJDToJD converts a Modified Julian Date to Julian Date.
func MJDToJD(mjd float64) float64 {
	return mjd + MJDEpochJD
}

// TimeToMJD converts a time.Time to a Modified Julian Date day-count.
func TimeToMJD(t time.Time) float64 {
	sec := float64(t.UnixNano()) / 1e9
	return unixEpochMJD + sec/secondsPerDay
}

// MJDToTime converts a Modified Julian Date to a time.Time in UTC. Sub-second
// precision is limited by the float64 day-count resolution.
func MJDToTime(mjd float64) time.Time {
	sec := (mjd - unixEpochMJD) * secondsPerDay
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC()
}
