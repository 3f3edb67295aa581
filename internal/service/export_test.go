package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/mvidaller/padel-league/internal/padel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteScheduleCSV(t *testing.T) {
	players := testRoster(t)

	matches, err := GenerateSchedule(players, 42)
	require.NoError(t, err)

	// One scored match, the rest pending.
	matches[0], err = matches[0].WithScore(1, 15)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteScheduleCSV(&buf, players, matches))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, padel.RoundCount*3+1, "header plus one row per match")

	assert.Equal(t, []string{"round", "court", "team1", "team2", "score"}, records[0])

	first := records[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "7", first[1])
	assert.Equal(t, "Daniel & Macho", first[2])
	assert.Contains(t, first[3], " & ")
	assert.Equal(t, "15-9", first[4])

	assert.Equal(t, "", records[2][4], "unscored matches export a blank score")

	last := records[len(records)-1]
	assert.Equal(t, "15", last[0])
	assert.Equal(t, "9", last[1])
}

func TestParsePlayerNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty input", input: "", want: nil},
		{name: "blank lines only", input: "\n  \n\t\n", want: nil},
		{name: "one per line", input: "Ana\nBea\nCarlos", want: []string{"Ana", "Bea", "Carlos"}},
		{name: "trims and skips blanks", input: "  Ana  \n\nBea\n   \n", want: []string{"Ana", "Bea"}},
		{name: "windows line endings", input: "Ana\r\nBea\r\n", want: []string{"Ana", "Bea"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePlayerNames(tt.input))
		})
	}
}
