package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeamDetails)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayerDetails)
	mux.HandleFunc("GET /v1/games/today", handler.GetTodayGames)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
}

func registerCacheAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/cache/status", handler.GetCacheStatus)
	mux.HandleFunc("POST /v1/cache/clear", handler.ClearCache)
}
