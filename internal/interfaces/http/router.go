package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	customerUC "gearshop/internal/application/customer/usecases"
	inventoryUC "gearshop/internal/application/inventory/usecases"
	mechanicUC "gearshop/internal/application/mechanic/usecases"
	ticketUC "gearshop/internal/application/ticket/usecases"
	"gearshop/internal/infrastructure/auth"
	"gearshop/internal/infrastructure/cache"
	"gearshop/internal/infrastructure/config"
	"gearshop/internal/infrastructure/ratelimit"
	"gearshop/internal/infrastructure/repository"
	"gearshop/internal/interfaces/http/handlers"
	"gearshop/internal/interfaces/http/middleware"
	"gearshop/internal/shared/constants"
	"gearshop/internal/shared/db"
	"gearshop/internal/shared/logger"
)

// Router wires repositories, use cases, handlers, and middleware into
// one gin engine.
type Router struct {
	engine *gin.Engine
}

func NewRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, log logger.Interface) *Router {
	if cfg.Server.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS([]string{"*"}))

	// Infrastructure
	txManager := db.NewTransactionManager(gormDB)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpHours)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	limiter := ratelimit.NewRedisRateLimiter(
		redisClient,
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)
	responseCache := cache.NewRedisResponseCache(
		redisClient,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		log.With("component", "response_cache"),
	)

	// Repositories
	customerRepo := repository.NewCustomerRepository(gormDB)
	mechanicRepo := repository.NewMechanicRepository(gormDB)
	inventoryRepo := repository.NewInventoryRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)

	// Handlers
	customerHandler := handlers.NewCustomerHandler(
		customerUC.NewCreateCustomerUseCase(customerRepo, hasher, log),
		customerUC.NewUpdateCustomerUseCase(customerRepo, hasher, log),
		customerUC.NewGetCustomerUseCase(customerRepo, log),
		customerUC.NewListCustomersUseCase(customerRepo, log),
		customerUC.NewLoginUseCase(customerRepo, hasher, jwtService, log),
		log,
	)
	mechanicHandler := handlers.NewMechanicHandler(
		mechanicUC.NewCreateMechanicUseCase(mechanicRepo, log),
		mechanicUC.NewUpdateMechanicUseCase(mechanicRepo, log),
		mechanicUC.NewDeleteMechanicUseCase(mechanicRepo, log),
		mechanicUC.NewGetMechanicUseCase(mechanicRepo, log),
		mechanicUC.NewListMechanicsUseCase(mechanicRepo, log),
		log,
	)
	inventoryHandler := handlers.NewInventoryHandler(
		inventoryUC.NewCreateItemUseCase(inventoryRepo, log),
		inventoryUC.NewUpdateItemUseCase(inventoryRepo, log),
		inventoryUC.NewDeleteItemUseCase(inventoryRepo, log),
		inventoryUC.NewGetItemUseCase(inventoryRepo, log),
		inventoryUC.NewListItemsUseCase(inventoryRepo, log),
		log,
	)
	ticketHandler := handlers.NewTicketHandler(
		ticketUC.NewCreateTicketUseCase(ticketRepo, customerRepo, log),
		ticketUC.NewGetTicketUseCase(ticketRepo, log),
		ticketUC.NewListTicketsUseCase(ticketRepo, log),
		ticketUC.NewListCustomerTicketsUseCase(ticketRepo, customerRepo, log),
		ticketUC.NewUpdateTicketUseCase(ticketRepo, log),
		ticketUC.NewAssignMechanicUseCase(ticketRepo, mechanicRepo, log),
		ticketUC.NewRemoveMechanicUseCase(ticketRepo, mechanicRepo, log),
		ticketUC.NewUpdateMechanicsUseCase(ticketRepo, mechanicRepo, txManager, log),
		ticketUC.NewAddInventoryUseCase(ticketRepo, inventoryRepo, txManager, log),
		log,
	)

	// Middleware applied per route
	authMW := middleware.NewAuthMiddleware(jwtService, log)
	rateLimitMW := middleware.RateLimit(limiter, log.With("component", "ratelimit"))
	cacheMW := middleware.CacheResponse(responseCache, log.With("component", "response_cache"))

	customers := engine.Group("/customers")
	{
		customers.GET("", rateLimitMW, cacheMW, customerHandler.List)
		customers.GET("/:id", customerHandler.Get)
		customers.POST("", customerHandler.Create)
		customers.PUT("/:id", customerHandler.Update)
		customers.POST("/login", customerHandler.Login)
	}

	mechanics := engine.Group("/mechanics")
	{
		mechanics.GET("", mechanicHandler.List)
		mechanics.GET("/:id", mechanicHandler.Get)
		mechanics.POST("", mechanicHandler.Create)
		mechanics.PUT("/:id", mechanicHandler.Update)
		mechanics.DELETE("/:id", mechanicHandler.Delete)
	}

	inventory := engine.Group("/inventory")
	{
		inventory.GET("", inventoryHandler.List)
		inventory.GET("/:id", inventoryHandler.Get)
		inventory.POST("", inventoryHandler.Create)
		inventory.PUT("/:id", inventoryHandler.Update)
		inventory.DELETE("/:id", inventoryHandler.Delete)
	}

	tickets := engine.Group("/tickets")
	{
		tickets.POST("", ticketHandler.Create)
		tickets.GET("", rateLimitMW, cacheMW, ticketHandler.List)
		tickets.GET("/my-tickets", authMW.RequireAuth(), ticketHandler.MyTickets)
		tickets.GET("/:id", ticketHandler.Get)
		tickets.PUT("/:id", authMW.RequireAuth(), ticketHandler.Update)
		tickets.PUT("/:id/assign-mechanic/:mechanic_id", ticketHandler.AssignMechanic)
		tickets.PUT("/:id/remove-mechanic/:mechanic_id", rateLimitMW, ticketHandler.RemoveMechanic)
		tickets.PUT("/:id/update-mechanics", ticketHandler.UpdateMechanics)
		tickets.POST("/:id/inventory", ticketHandler.AddInventory)
		// DELETE /tickets/:id is intentionally not routed: tickets are
		// the shop's service history.
	}

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
