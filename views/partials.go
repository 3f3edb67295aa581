package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/mvidaller/padel-league/internal/padel"
)

func ScheduleTable(data ScheduleData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<table class="schedule"><thead><tr><th>Round</th><th>Court</th><th>Pair</th><th>Score</th><th>Pair</th></tr></thead>`)
		for _, num := range data.RoundNums {
			h.raw(`<tbody>`)
			for i, m := range data.Rounds[num] {
				h.raw(`<tr>`)
				if i == 0 {
					h.rawf(`<td class="round-num" rowspan="%d">%d</td>`, len(data.Rounds[num]), num)
				}
				h.rawf(`<td>%d</td><td>`, m.Court)
				h.text(data.TeamLabel(m.Team1A, m.Team1B))
				h.raw(`</td>`)
				h.component(ctx, ScoreCell(m))
				h.raw(`<td>`)
				h.text(data.TeamLabel(m.Team2A, m.Team2B))
				h.raw(`</td></tr>`)
			}
			h.raw(`</tbody>`)
		}
		h.raw(`</table>`)
		return h.err
	})
}

// ScoreCell is the editable score fragment. Each input posts its own side;
// the response swaps the whole cell so the auto-filled side updates too.
func ScoreCell(m padel.Match) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.rawf(`<td class="score-cell" id="score-%s">`, m.ID)
		scoreInput(h, m, 1, m.Score1)
		h.raw(`<span class="dash">-</span>`)
		scoreInput(h, m, 2, m.Score2)
		h.raw(`</td>`)
		return h.err
	})
}

func scoreInput(h *htmlWriter, m padel.Match, side int, score *int) {
	value := ""
	if score != nil {
		value = strconv.Itoa(*score)
	}
	h.rawf(`<input type="number" name="value" value="%s" min="0" max="%d" `, value, padel.MatchPoints)
	h.rawf(`hx-post="/matches/%s/score?side=%d" hx-target="#score-%s" hx-swap="outerHTML" hx-include="this">`, m.ID, side, m.ID)
}

// StandingsPanel wraps the standings and duo stats in a container that
// refreshes itself whenever a score edit fires scores-changed.
func StandingsPanel(leagueID uuid.UUID, rows []padel.StandingRow, hasDuo bool, summary padel.DuoSummary, log []padel.DuoGameEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.rawf(`<section id="stats" hx-get="/leagues/%s/standings" hx-trigger="scores-changed from:body" hx-swap="outerHTML">`, leagueID)
		h.raw(`<h2>Standings</h2>`)
		h.component(ctx, StandingsTable(rows))
		if hasDuo {
			h.component(ctx, DuoPanel(summary, log))
		}
		h.raw(`</section>`)
		return h.err
	})
}

func StandingsTable(rows []padel.StandingRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<table class="standings"><thead><tr>`)
		h.raw(`<th></th><th>Player</th><th>P</th><th>W</th><th>T</th><th>L</th><th>PF</th><th>PA</th><th>Diff</th>`)
		h.raw(`</tr></thead><tbody>`)
		for i, row := range rows {
			h.rawf(`<tr><td>%d</td><td>`, i+1)
			h.text(row.Name)
			h.rawf(`</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%+d</td></tr>`,
				row.Played, row.Won, row.Tied, row.Lost, row.PointsFor, row.PointsAgainst, row.Diff)
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}

func DuoPanel(summary padel.DuoSummary, log []padel.DuoGameEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="duo">`)
		h.rawf(`<h2>%s &amp; %s</h2>`, padel.DuoName1, padel.DuoName2)
		h.rawf(`<ul class="duo-stats"><li>Played %d</li><li>Won %d</li><li>Tied %d</li><li>Lost %d</li><li>Points %d</li><li>Avg %.1f</li></ul>`,
			summary.Played, summary.Won, summary.Tied, summary.Lost, summary.PointsFor, summary.AveragePoints)

		if len(log) == 0 {
			h.raw(`<p class="empty">No scored matches yet.</p></section>`)
			return h.err
		}

		h.raw(`<table class="duo-log"><thead><tr><th>Round</th><th>Opponents</th><th>Score</th><th>Result</th></tr></thead><tbody>`)
		for _, entry := range log {
			h.rawf(`<tr><td>%d</td><td>`, entry.RoundNumber)
			h.text(entry.Opponents)
			h.rawf(`</td><td>%s</td><td class="result-%s">%s</td></tr>`, entry.Score, entry.Result, entry.Result)
		}
		h.raw(`</tbody></table></section>`)
		return h.err
	})
}
