package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/ploscarna/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	ensemblesHandler := &EnsemblesHandler{DB: db}
	musiciansHandler := &MusiciansHandler{DB: db}
	compositionsHandler := &CompositionsHandler{DB: db}
	recordsHandler := &RecordsHandler{DB: db}
	membersHandler := &MembersHandler{DB: db}
	performancesHandler := &PerformancesHandler{DB: db}
	tracksHandler := &TracksHandler{DB: db}
	analyticsHandler := &AnalyticsHandler{DB: db}
	actionsHandler := &ActionsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret)
	requireAdmin := RequireRole(model.RoleAdmin)

	// Public: login and registration.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)

	// Authenticated session routes.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("GET /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Get))))

	// Ensembles.
	mux.Handle("GET /api/ensembles", authMW(http.HandlerFunc(ensemblesHandler.List)))
	mux.Handle("POST /api/ensembles", authMW(http.HandlerFunc(ensemblesHandler.Create)))
	mux.Handle("GET /api/ensembles/summary", authMW(http.HandlerFunc(ensemblesHandler.Summary)))
	mux.Handle("GET /api/ensembles/{id}", authMW(http.HandlerFunc(ensemblesHandler.Get)))
	mux.Handle("PUT /api/ensembles/{id}", authMW(http.HandlerFunc(ensemblesHandler.Update)))
	mux.Handle("DELETE /api/ensembles/{id}", authMW(http.HandlerFunc(ensemblesHandler.Delete)))

	// Musicians.
	mux.Handle("GET /api/musicians", authMW(http.HandlerFunc(musiciansHandler.List)))
	mux.Handle("POST /api/musicians", authMW(http.HandlerFunc(musiciansHandler.Create)))
	mux.Handle("GET /api/musicians/{id}", authMW(http.HandlerFunc(musiciansHandler.Get)))
	mux.Handle("PUT /api/musicians/{id}", authMW(http.HandlerFunc(musiciansHandler.Update)))
	mux.Handle("DELETE /api/musicians/{id}", authMW(http.HandlerFunc(musiciansHandler.Delete)))

	// Compositions.
	mux.Handle("GET /api/compositions", authMW(http.HandlerFunc(compositionsHandler.List)))
	mux.Handle("POST /api/compositions", authMW(http.HandlerFunc(compositionsHandler.Create)))
	mux.Handle("GET /api/compositions/{id}", authMW(http.HandlerFunc(compositionsHandler.Get)))
	mux.Handle("PUT /api/compositions/{id}", authMW(http.HandlerFunc(compositionsHandler.Update)))
	mux.Handle("DELETE /api/compositions/{id}", authMW(http.HandlerFunc(compositionsHandler.Delete)))

	// Records, including sales tracking.
	mux.Handle("GET /api/records", authMW(http.HandlerFunc(recordsHandler.List)))
	mux.Handle("POST /api/records", authMW(http.HandlerFunc(recordsHandler.Create)))
	mux.Handle("GET /api/records/sales-leaders", authMW(http.HandlerFunc(recordsHandler.SalesLeaders)))
	mux.Handle("GET /api/records/{id}", authMW(http.HandlerFunc(recordsHandler.Get)))
	mux.Handle("PUT /api/records/{id}", authMW(http.HandlerFunc(recordsHandler.Update)))
	mux.Handle("DELETE /api/records/{id}", authMW(http.HandlerFunc(recordsHandler.Delete)))
	mux.Handle("POST /api/records/{id}/sales", authMW(http.HandlerFunc(recordsHandler.AddSales)))

	// Relations, addressed by display names.
	mux.Handle("GET /api/members", authMW(http.HandlerFunc(membersHandler.List)))
	mux.Handle("POST /api/members", authMW(http.HandlerFunc(membersHandler.Create)))
	mux.Handle("PUT /api/members", authMW(http.HandlerFunc(membersHandler.Update)))
	mux.Handle("DELETE /api/members", authMW(http.HandlerFunc(membersHandler.Delete)))

	mux.Handle("GET /api/performances", authMW(http.HandlerFunc(performancesHandler.List)))
	mux.Handle("POST /api/performances", authMW(http.HandlerFunc(performancesHandler.Create)))
	mux.Handle("PUT /api/performances", authMW(http.HandlerFunc(performancesHandler.Update)))
	mux.Handle("DELETE /api/performances", authMW(http.HandlerFunc(performancesHandler.Delete)))

	mux.Handle("GET /api/tracks", authMW(http.HandlerFunc(tracksHandler.List)))
	mux.Handle("POST /api/tracks", authMW(http.HandlerFunc(tracksHandler.Create)))
	mux.Handle("PUT /api/tracks", authMW(http.HandlerFunc(tracksHandler.Update)))
	mux.Handle("DELETE /api/tracks", authMW(http.HandlerFunc(tracksHandler.Delete)))

	// Analytics reports.
	mux.Handle("GET /api/analytics/record-overview", authMW(http.HandlerFunc(analyticsHandler.RecordOverview)))
	mux.Handle("GET /api/analytics/ensemble-repertoire", authMW(http.HandlerFunc(analyticsHandler.EnsembleRepertoire)))
	mux.Handle("GET /api/analytics/musician-ensembles", authMW(http.HandlerFunc(analyticsHandler.MusicianEnsembles)))
	mux.Handle("GET /api/analytics/composition-popularity", authMW(http.HandlerFunc(analyticsHandler.CompositionPopularity)))
	mux.Handle("GET /api/analytics/record-finance", authMW(http.HandlerFunc(analyticsHandler.RecordFinance)))

	// Audit log (own entries).
	mux.Handle("GET /api/actions", authMW(http.HandlerFunc(actionsHandler.List)))
	mux.Handle("DELETE /api/actions", authMW(http.HandlerFunc(actionsHandler.Clear)))

	return mux
}
