// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	healthfeature "github.com/nitinpratap/folio/internal/app/features/health"
	profilefeature "github.com/nitinpratap/folio/internal/app/features/profile"
	projectsfeature "github.com/nitinpratap/folio/internal/app/features/projects"
	skillsfeature "github.com/nitinpratap/folio/internal/app/features/skills"
	workfeature "github.com/nitinpratap/folio/internal/app/features/work"
	"github.com/nitinpratap/folio/internal/app/system/metrics"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and Startup have completed. The four resource subrouters are mounted
// under /api; /health and /metrics sit at the root. The API is served
// unauthenticated with a permissive CORS policy, matching the contract
// with the browser front-end, which fetches the four resource roots on
// load and filters client-side.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	collector := metrics.NewCollector()

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(collector.Middleware)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus metrics
	r.Handle("/metrics", collector.Handler())

	// Resource endpoints
	profileHandler := profilefeature.NewHandler(deps.MongoDatabase, logger)
	projectsHandler := projectsfeature.NewHandler(deps.MongoDatabase, logger)
	skillsHandler := skillsfeature.NewHandler(deps.MongoDatabase, logger)
	workHandler := workfeature.NewHandler(deps.MongoDatabase, logger)

	r.Route("/api", func(api chi.Router) {
		api.Mount("/profile", profilefeature.Routes(profileHandler))
		api.Mount("/projects", projectsfeature.Routes(projectsHandler))
		api.Mount("/skills", skillsfeature.Routes(skillsHandler))
		api.Mount("/work", workfeature.Routes(workHandler))
	})

	return r, nil
}
