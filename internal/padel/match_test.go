package padel

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithScore(t *testing.T) {
	tests := []struct {
		name    string
		side    int
		value   int
		want1   int
		want2   int
		wantErr bool
	}{
		{name: "side 1 in range", side: 1, value: 15, want1: 15, want2: 9},
		{name: "side 2 in range", side: 2, value: 9, want1: 15, want2: 9},
		{name: "side 1 above range clamps to max", side: 1, value: 30, want1: 24, want2: 0},
		{name: "side 2 above range clamps to max", side: 2, value: 25, want1: 0, want2: 24},
		{name: "negative value clamps to zero", side: 1, value: -3, want1: 0, want2: 24},
		{name: "exact max", side: 1, value: 24, want1: 24, want2: 0},
		{name: "zero", side: 1, value: 0, want1: 0, want2: 24},
		{name: "invalid side", side: 3, value: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Match{RoundNumber: 1, Court: DuoCourt}

			updated, err := m.WithScore(tt.side, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, updated.Score1)
			require.NotNil(t, updated.Score2)
			assert.Equal(t, tt.want1, *updated.Score1)
			assert.Equal(t, tt.want2, *updated.Score2)
			assert.True(t, updated.ScoreValid())

			// The receiver is untouched.
			assert.Nil(t, m.Score1)
			assert.Nil(t, m.Score2)
		})
	}
}

func TestWithScoreOverwritesExisting(t *testing.T) {
	m := Match{}
	first, err := m.WithScore(1, 15)
	require.NoError(t, err)

	second, err := first.WithScore(2, 14)
	require.NoError(t, err)

	assert.Equal(t, 10, *second.Score1)
	assert.Equal(t, 14, *second.Score2)
	assert.Equal(t, 15, *first.Score1, "earlier copy keeps its score")
}

func TestScoreValid(t *testing.T) {
	n := func(v int) *int { return &v }

	tests := []struct {
		name   string
		score1 *int
		score2 *int
		want   bool
	}{
		{name: "no score", score1: nil, score2: nil, want: false},
		{name: "one side only", score1: n(12), score2: nil, want: false},
		{name: "sums to total", score1: n(15), score2: n(9), want: true},
		{name: "tie sums to total", score1: n(12), score2: n(12), want: true},
		{name: "sums below total", score1: n(10), score2: n(10), want: false},
		{name: "sums above total", score1: n(20), score2: n(20), want: false},
		{name: "shutout", score1: n(24), score2: n(0), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Match{Score1: tt.score1, Score2: tt.score2}
			assert.Equal(t, tt.want, m.ScoreValid())
		})
	}
}

func TestTeamOf(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	c, d := uuid.New(), uuid.New()
	e := uuid.New()

	m := Match{Team1A: a, Team1B: b, Team2A: c, Team2B: d}

	assert.Equal(t, 1, m.TeamOf(a, b))
	assert.Equal(t, 1, m.TeamOf(b, a), "order does not matter")
	assert.Equal(t, 2, m.TeamOf(d, c))
	assert.Equal(t, 0, m.TeamOf(a, c), "split across teams is no team")
	assert.Equal(t, 0, m.TeamOf(a, e))
}
