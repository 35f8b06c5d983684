package handlers

import (
	"HomeStock/internal/config"
	"HomeStock/internal/middleware"
	"HomeStock/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	catalog *service.CatalogService,
	ledger *service.LedgerService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	listHandler := NewListHandler(catalog, logger, config)
	itemHandler := NewItemHandler(catalog, ledger, logger)
	reportHandler := NewReportHandler(catalog, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/logout", userHandler.Logout)
	r.Post("/api/user/test", userHandler.Status)

	// Всё остальное, только для аутентифицированных
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/api/lists", authed(listHandler.List))
		r.Post("/api/lists", authed(listHandler.Create))
		r.Get("/api/lists/{id:[0-9]+}", authed(listHandler.Get))
		r.Put("/api/lists/{id:[0-9]+}", authed(listHandler.Update))
		r.Delete("/api/lists/{id:[0-9]+}", authed(listHandler.Delete))
		r.Get("/api/lists/{id:[0-9]+}/items", authed(itemHandler.ListInList))
		r.Post("/api/lists/{id:[0-9]+}/items", authed(itemHandler.CreateInList))
		r.Get("/api/lists/{id:[0-9]+}/cost", authed(reportHandler.ListCost))
		r.Post("/api/lists/{id:[0-9]+}/image", authed(listHandler.UploadImage))
		r.Get("/api/images/{imageID}", authed(listHandler.Image))

		r.Get("/api/items", authed(itemHandler.List))
		r.Post("/api/items", authed(itemHandler.Create))
		r.Get("/api/items/{id:[0-9]+}", authed(itemHandler.Get))
		r.Put("/api/items/{id:[0-9]+}", authed(itemHandler.Update))
		r.Delete("/api/items/{id:[0-9]+}", authed(itemHandler.Delete))
		r.Get("/api/items/{id:[0-9]+}/cost", authed(itemHandler.Cost))
		r.Post("/api/items/{id:[0-9]+}/{action}", authed(itemHandler.Adjust))

		r.Get("/api/inventory/value", authed(reportHandler.InventoryValue))
		r.Get("/api/inventory/restock", authed(reportHandler.Restock))
	})

	return &Handler{Router: r}
}

// authedFunc: хендлер, получающий AuthContext явным аргументом.
type authedFunc func(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext)

func authed(fn authedFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth, ok := middleware.AuthFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		fn(w, r, auth)
	}
}
