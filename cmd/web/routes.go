package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/markbates/goth/gothic"
	"github.com/mvidaller/padel-league/internal/db"
	"github.com/mvidaller/padel-league/internal/httputil"
	"github.com/mvidaller/padel-league/internal/middleware"
	"github.com/mvidaller/padel-league/internal/padel"
	"github.com/mvidaller/padel-league/internal/service"
	"github.com/mvidaller/padel-league/internal/store"
	"github.com/mvidaller/padel-league/views"
)

func newRouter(sessionManager *scs.SessionManager) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.LoadAuthenticatedUser(sessionManager, store.NewUserStore(db.GetDB())))

	// Serve static files
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	// League pages are public: players follow a shared link to check the
	// schedule, only organizers log in.
	r.Get("/leagues/{id}", func(w http.ResponseWriter, r *http.Request) {
		data, ok := loadLeagueData(w, r)
		if !ok {
			return
		}

		standings, hasDuo, summary, duoLog := leagueStats(data)
		views.LeaguePage(data.League, data.Players, data.Matches, standings, hasDuo, summary, duoLog).Render(r.Context(), w)
	})

	r.Get("/leagues/{id}/standings", func(w http.ResponseWriter, r *http.Request) {
		data, ok := loadLeagueData(w, r)
		if !ok {
			return
		}

		standings, hasDuo, summary, duoLog := leagueStats(data)
		views.StandingsPanel(data.League.ID, standings, hasDuo, summary, duoLog).Render(r.Context(), w)
	})

	r.Get("/leagues/{id}/print", func(w http.ResponseWriter, r *http.Request) {
		data, ok := loadLeagueData(w, r)
		if !ok {
			return
		}

		standings, hasDuo, summary, duoLog := leagueStats(data)
		views.PrintPage(data.League, data.Players, data.Matches, standings, hasDuo, summary, duoLog).Render(r.Context(), w)
	})

	r.Get("/leagues/{id}/export.csv", func(w http.ResponseWriter, r *http.Request) {
		data, ok := loadLeagueData(w, r)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := service.WriteScheduleCSV(&buf, data.Players, data.Matches); err != nil {
			httputil.InternalServerError(w, "Failed to export schedule", err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="padel-schedule.csv"`)
		w.Write(buf.Bytes())
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			dbConn := db.GetDB()
			leagueService := service.NewLeagueService(dbConn, store.NewLeagueStore(dbConn))

			leagues, err := leagueService.GetLeaguesForUser(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to get leagues", err)
				return
			}
			views.Index(leagues).Render(r.Context(), w)
		})

		r.Get("/leagues/create", func(w http.ResponseWriter, r *http.Request) {
			views.CreateLeaguePage().Render(r.Context(), w)
		})

		r.Post("/leagues", func(w http.ResponseWriter, r *http.Request) {
			dbConn := db.GetDB()
			leagueService := service.NewLeagueService(dbConn, store.NewLeagueStore(dbConn))

			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}

			name := strings.TrimSpace(r.Form.Get("name"))
			if name == "" {
				httputil.BadRequest(w, "League name is required", nil)
				return
			}
			if len(name) > 50 {
				httputil.BadRequest(w, "League name exceeds 50 characters", nil)
				return
			}

			playerNames := service.ParsePlayerNames(r.Form.Get("players"))
			for _, playerName := range playerNames {
				if len(playerName) > 50 {
					httputil.BadRequest(w, fmt.Sprintf("Player name '%s' exceeds 50 characters", playerName), nil)
					return
				}
			}

			seed := time.Now().UnixNano()
			if seedStr := strings.TrimSpace(r.Form.Get("seed")); seedStr != "" {
				parsed, err := strconv.ParseInt(seedStr, 10, 64)
				if err != nil {
					httputil.BadRequest(w, "Seed must be a whole number", err)
					return
				}
				seed = parsed
			}

			id, err := leagueService.CreateLeague(r.Context(), name, playerNames, seed)
			if err != nil {
				if errors.Is(err, padel.ErrPlayerCount) || errors.Is(err, padel.ErrDuoPlayers) || errors.Is(err, padel.ErrInfeasible) {
					httputil.BadRequest(w, err.Error(), err)
					return
				}
				httputil.InternalServerError(w, "Failed to create league", err)
				return
			}

			w.Header().Set("HX-Redirect", fmt.Sprintf("/leagues/%s", id))
			w.WriteHeader(http.StatusOK)
		})

		r.Post("/matches/{id}/score", func(w http.ResponseWriter, r *http.Request) {
			dbConn := db.GetDB()
			scoreService := service.NewScoreService(dbConn, store.NewLeagueStore(dbConn))

			matchID, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid match ID", err)
				return
			}
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}

			side, err := strconv.Atoi(r.Form.Get("side"))
			if err != nil || (side != 1 && side != 2) {
				httputil.BadRequest(w, "Side must be 1 or 2", err)
				return
			}
			value, err := strconv.Atoi(r.Form.Get("value"))
			if err != nil {
				httputil.BadRequest(w, "Score must be a whole number", err)
				return
			}

			match, err := scoreService.UpdateScore(r.Context(), matchID, side, value)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					httputil.NotFound(w, "Match not found", err)
					return
				}
				httputil.InternalServerError(w, "Failed to update score", err)
				return
			}

			// Tell the stats panel to refresh itself
			w.Header().Set("HX-Trigger", "scores-changed")
			views.ScoreCell(*match).Render(r.Context(), w)
		})
	})

	r.Get("/auth/{provider}", func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))

		gothic.BeginAuthHandler(w, r)
	})

	r.Get("/auth/{provider}/callback", func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))

		gothUser, err := gothic.CompleteUserAuth(w, r)
		if err != nil {
			httputil.BadRequest(w, "Authentication failure", err)
			return
		}

		dbConn := db.GetDB()
		userService := service.NewUserService(dbConn, store.NewUserStore(dbConn))
		user, err := userService.FindOrCreateUserByProvider(r.Context(), gothUser)
		if err != nil {
			httputil.InternalServerError(w, "Failed to find or create user", err)
			return
		}

		sessionManager.Put(r.Context(), "userID", user.ID.String())

		http.Redirect(w, r, "/", http.StatusFound)
	})

	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		views.LoginPage().Render(r.Context(), w)
	})

	r.Post("/auth/guest", func(w http.ResponseWriter, r *http.Request) {
		dbConn := db.GetDB()
		userService := service.NewUserService(dbConn, store.NewUserStore(dbConn))

		user, err := userService.EnsureGuestUser(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to login as guest", err)
			return
		}

		sessionManager.Put(r.Context(), "userID", user.ID.String())
		http.Redirect(w, r, "/", http.StatusFound)
	})

	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		sessionManager.Destroy(r.Context())
		if r.Header.Get("HX-Request") != "" {
			w.Header().Set("HX-Redirect", "/login")
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	return r
}

// loadLeagueData fetches everything the league pages need and writes the
// error response itself when the league is missing or the DB fails.
func loadLeagueData(w http.ResponseWriter, r *http.Request) (*service.LeagueData, bool) {
	dbConn := db.GetDB()
	leagueService := service.NewLeagueService(dbConn, store.NewLeagueStore(dbConn))

	data, err := leagueService.GetLeagueData(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			httputil.NotFound(w, "League not found", err)
			return nil, false
		}
		httputil.InternalServerError(w, "Failed to get league", err)
		return nil, false
	}
	return data, true
}

func leagueStats(data *service.LeagueData) ([]padel.StandingRow, bool, padel.DuoSummary, []padel.DuoGameEntry) {
	standings := service.ComputeStandings(data.Players, data.Matches)
	duo, hasDuo := padel.DuoIDs(data.Players)
	if !hasDuo {
		return standings, false, padel.DuoSummary{}, nil
	}
	return standings, true, service.DuoSummary(data.Matches, duo), service.DuoGameLog(data.Players, data.Matches, duo)
}
