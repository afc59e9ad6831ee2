package idx

import (
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestNewRoundTripsThroughParse(t *testing.T) {
	id := New()
	require.False(t, id.IsZero())
	require.Len(t, id.String(), 26)

	parsed, err := Parse("  " + id.String() + "\n")
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"not-an-id",
		"8f14e45f-ceea-467a-9af0-2f2d3b1c1b7e", // uuid
		"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z",            // one char short
		"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZU",           // U is outside crockford base32
	} {
		_, err := Parse(in)
		require.ErrorIs(t, err, ErrInvalid, "%q", in)
	}
}

func TestMonotonicWithinSameInstant(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	prev := newAt(at)
	for range 100 {
		next := newAt(at)
		require.Less(t, prev.String(), next.String())
		prev = next
	}

	u, err := ulid.ParseStrict(prev.String())
	require.NoError(t, err)
	require.True(t, at.Equal(ulid.Time(u.Time())))
}

func TestConcurrentNewIsUnique(t *testing.T) {
	const workers, each = 8, 250

	var (
		mu   sync.Mutex
		seen = make(map[ID]struct{}, workers*each)
		wg   sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]ID, 0, each)
			for range each {
				local = append(local, New())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*each)
}
