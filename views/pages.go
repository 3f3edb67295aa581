package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/mvidaller/padel-league/internal/padel"
)

func LoginPage() templ.Component {
	return Layout("Log in", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="login"><h1>Log in</h1>`)
		h.raw(`<a class="button" href="/auth/discord">Continue with Discord</a>`)
		h.raw(`<a class="button" href="/auth/google">Continue with Google</a>`)
		h.raw(`<form method="post" action="/auth/guest"><button type="submit">Continue as guest</button></form>`)
		h.raw(`</section>`)
		return h.err
	}))
}

func Index(leagues []padel.League) templ.Component {
	return Layout("Padel League", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="page-head"><h1>Your leagues</h1>`)
		h.raw(`<a class="button" href="/leagues/create">New league</a></section>`)

		if len(leagues) == 0 {
			h.raw(`<p class="empty">No leagues yet. Create one to generate its schedule.</p>`)
			return h.err
		}

		h.raw(`<ul class="league-list">`)
		for _, l := range leagues {
			h.rawf(`<li><a href="/leagues/%s">`, l.ID)
			h.text(l.Name)
			h.rawf(`</a> <span class="muted">created %s</span></li>`, l.CreatedAt.Format("2 Jan 2006"))
		}
		h.raw(`</ul>`)
		return h.err
	}))
}

func CreateLeaguePage() templ.Component {
	return Layout("New league", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>New league</h1>`)
		h.raw(`<form class="create-form" hx-post="/leagues" hx-swap="none">`)
		h.raw(`<label>League name<input type="text" name="name" maxlength="50" required></label>`)
		h.rawf(`<label>Players, one per line<textarea name="players" rows="%d" required placeholder="%s&#10;%s&#10;Ana&#10;Luis&#10;..."></textarea></label>`,
			padel.PlayerCount, padel.DuoName1, padel.DuoName2)
		h.rawf(`<p class="hint">Exactly %d names. %s and %s always pair up on court %d and face everyone else three times.</p>`,
			padel.PlayerCount, padel.DuoName1, padel.DuoName2, padel.DuoCourt)
		h.raw(`<label>Seed (optional)<input type="number" name="seed" placeholder="random"></label>`)
		h.raw(`<button type="submit">Generate schedule</button>`)
		h.raw(`</form>`)
		return h.err
	}))
}

func LeaguePage(league *padel.League, players []padel.Player, matches []padel.Match,
	standings []padel.StandingRow, hasDuo bool, summary padel.DuoSummary, log []padel.DuoGameEntry) templ.Component {
	data := PrepareScheduleData(players, matches)
	return Layout(league.Name, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="page-head"><h1>`)
		h.text(league.Name)
		h.raw(`</h1><div class="actions">`)
		h.rawf(`<a class="button" href="/leagues/%s/print" target="_blank">Print view</a>`, league.ID)
		h.rawf(`<a class="button" href="/leagues/%s/export.csv">Download CSV</a>`, league.ID)
		h.raw(`</div></section>`)
		h.component(ctx, ScheduleTable(data))
		h.component(ctx, StandingsPanel(league.ID, standings, hasDuo, summary, log))
		return h.err
	}))
}

// PrintPage is the hand-out sheet: the full schedule with scores where known,
// the standings and the duo stats, no htmx and no navigation.
func PrintPage(league *padel.League, players []padel.Player, matches []padel.Match,
	standings []padel.StandingRow, hasDuo bool, summary padel.DuoSummary, log []padel.DuoGameEntry) templ.Component {
	data := PrepareScheduleData(players, matches)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		h.text(league.Name)
		h.raw(`</title><link rel="stylesheet" href="/static/styles.css"></head><body class="print">`)
		h.raw(`<h1>`)
		h.text(league.Name)
		h.raw(`</h1>`)
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
				h.raw(`</td><td class="score">`)
				if m.HasScore() {
					h.rawf(`%d-%d`, *m.Score1, *m.Score2)
				}
				h.raw(`</td><td>`)
				h.text(data.TeamLabel(m.Team2A, m.Team2B))
				h.raw(`</td></tr>`)
			}
			h.raw(`</tbody>`)
		}
		h.raw(`</table>`)
		h.raw(`<h2>Standings</h2>`)
		h.component(ctx, StandingsTable(standings))
		if hasDuo {
			h.component(ctx, DuoPanel(summary, log))
		}
		h.raw(`</body></html>`)
		return h.err
	})
}
