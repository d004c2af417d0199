package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-02-03")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), d)

	d, err = parseDate("2025-02-03T10:00:00+02:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC), d)

	_, err = parseDate("03/02/2025")
	require.Error(t, err)

	none, err := parseOptionalDate("  ")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestParseReportFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/reports?plate=abc-1&from=2025-01-01&to=2025-01-31&obligation_status=Expired", nil)
	f, err := parseReportFilter(r)
	require.NoError(t, err)
	require.Equal(t, "ABC1", f.Plate)
	require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *f.From)
	require.Equal(t, 31, f.To.Day())
	require.Equal(t, 23, f.To.Hour())
	require.NotNil(t, f.ObligationCurrent)
	require.False(t, *f.ObligationCurrent)

	_, err = parseReportFilter(httptest.NewRequest("GET", "/v1/reports?from=yesterday", nil))
	require.Error(t, err)
}
