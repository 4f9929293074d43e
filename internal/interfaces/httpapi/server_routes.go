package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerGameplanRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("POST /api/gameplan", handler.GenerateGameplan)
	mux.HandleFunc("POST /api/gameplan/sweep", handler.SweepGameplans)
}

func registerWebRoutes(mux *http.ServeMux, web http.Handler) {
	if web == nil {
		return
	}

	mux.Handle("GET /{$}", web)
	mux.Handle("POST /{$}", web)
}
