package timeconv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJDMJDRoundTrip(t *testing.T) {
	jd := 2457000.75
	mjd := JDToMJD(jd)
	assert.InDelta(t, 57000.25, mjd, 1e-9)
	assert.InDelta(t, jd, MJDToJD(mjd), 1e-9)
}

func TestUnixEpochMJD(t *testing.T) {
	epoch := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 40587.0, TimeToMJD(epoch), 1e-9)
}

func TestTimeRoundTrip(t *testing.T) {
	orig := time.Date(2016, 3, 4, 12, 0, 0, 0, time.UTC)
	mjd := TimeToMJD(orig)
	back := MJDToTime(mjd)
	require.WithinDuration(t, orig, back, time.Millisecond)

	// noon lands exactly on a half day
	assert.InDelta(t, 0.5, mjd-float64(int64(mjd)), 1e-9)
}
