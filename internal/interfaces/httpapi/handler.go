package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hooplabs/courtside/internal/platform/logging"
	"github.com/hooplabs/courtside/internal/usecase"
)

type Handler struct {
	teamService       *usecase.TeamService
	playerService     *usecase.PlayerService
	scoreboardService *usecase.ScoreboardService
	standingsService  *usecase.StandingsService
	cacheAdminService *usecase.CacheAdminService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	scoreboardService *usecase.ScoreboardService,
	standingsService *usecase.StandingsService,
	cacheAdminService *usecase.CacheAdminService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:       teamService,
		playerService:     playerService,
		scoreboardService: scoreboardService,
		standingsService:  standingsService,
		cacheAdminService: cacheAdminService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamListItemDTO, 0, len(teams))
	for _, item := range teams {
		items = append(items, teamToListItemDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, teamListDTO{Teams: items, Count: len(items)})
}

type teamDetailsParams struct {
	TeamID             int64 `validate:"required,gt=0"`
	IncludePlayerStats bool
}

func (h *Handler) GetTeamDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamDetails")
	defer span.End()

	params, err := parseTeamDetailsParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.teamService.GetTeamDetails(ctx, params.TeamID, params.IncludePlayerStats)
	if err != nil {
		h.logger.WarnContext(ctx, "get team details failed", "team_id", params.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamDetailsToDTO(details))
}

func parseTeamDetailsParams(r *http.Request) (teamDetailsParams, error) {
	rawID := strings.TrimSpace(r.PathValue("teamID"))
	teamID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return teamDetailsParams{}, fmt.Errorf("%w: team id must be numeric", usecase.ErrInvalidInput)
	}

	include := false
	if raw := strings.TrimSpace(r.URL.Query().Get("include_player_stats")); raw != "" {
		include, err = strconv.ParseBool(raw)
		if err != nil {
			return teamDetailsParams{}, fmt.Errorf("%w: include_player_stats must be a boolean", usecase.ErrInvalidInput)
		}
	}

	return teamDetailsParams{TeamID: teamID, IncludePlayerStats: include}, nil
}

func (h *Handler) GetPlayerDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDetails")
	defer span.End()

	rawID := strings.TrimSpace(r.PathValue("playerID"))
	playerID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: player id must be numeric", usecase.ErrInvalidInput))
		return
	}

	profile, err := h.playerService.GetPlayerDetails(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player details failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(profile))
}

func (h *Handler) GetTodayGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTodayGames")
	defer span.End()

	board, err := h.scoreboardService.TodayGames(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get today games failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreboardToDTO(board))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	rows, err := h.standingsService.Standings(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) GetCacheStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCacheStatus")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, cacheStatusToDTO(h.cacheAdminService.Status(ctx)))
}

func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearCache")
	defer span.End()

	h.cacheAdminService.Clear(ctx)
	writeSuccess(ctx, w, http.StatusOK, cacheClearDTO{Cleared: true})
}
