package idx_test

import (
	"sort"
	"testing"
	"time"

	"github.com/aussiebroadwan/garage/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-ulid", "ABCD-EFGH"} {
		t.Run(in, func(t *testing.T) {
			_, err := idx.Parse(in)
			require.ErrorIs(t, err, idx.ErrInvalid)
			require.False(t, idx.Valid(in))
		})
	}
}

func TestIDsSortByTime(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())
	c := idx.NewAt(time.Unix(3, 0).UTC())

	ids := []string{c.String(), a.String(), b.String()}
	sort.Strings(ids)
	require.Equal(t, []string{a.String(), b.String(), c.String()}, ids)
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)

	require.WithinDuration(t, tm, id.Time(), time.Millisecond)
	require.True(t, idx.ID("nope").Time().IsZero())
}
