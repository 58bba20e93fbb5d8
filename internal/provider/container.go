package provider

import (
	"github.com/finotty/duqueLoja/internal/authz"
	"github.com/finotty/duqueLoja/internal/cache"
	"github.com/finotty/duqueLoja/internal/config"
	"github.com/finotty/duqueLoja/internal/localstore"
	"github.com/finotty/duqueLoja/internal/logger"
	"github.com/finotty/duqueLoja/internal/models"
	"github.com/finotty/duqueLoja/internal/repository"
	"github.com/finotty/duqueLoja/internal/service"
)

// Container dependency injection container
type Container struct {
	Config *config.Config
	Store  localstore.Store

	// Repositories
	AdminRepo         repository.AdminRepository
	UserRepo          repository.UserRepository
	ProductRepo       repository.ProductRepository
	CustomProductRepo repository.CustomProductRepository
	TemplateRepo      repository.ProductTemplateRepository
	OrderRepo         repository.OrderRepository

	// Services
	AuthzService     *authz.Service
	AuthService      *service.AuthService
	UserAuthService  *service.UserAuthService
	CaptchaService   *service.CaptchaService
	CatalogService   *service.CatalogService
	CartService      *service.CartService
	FavoritesService *service.FavoritesService
	CheckoutService  *service.CheckoutService
	OrderService     *service.OrderService
}

// NewContainer builds the container
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	store, err := localstore.NewFileStore(cfg.Store.Dir)
	if err != nil {
		logger.Errorw("provider_init_store_failed", "dir", cfg.Store.Dir, "error", err)
		panic(err)
	}

	c := &Container{
		Config: cfg,
		Store:  store,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CustomProductRepo = repository.NewCustomProductRepository(db)
	c.TemplateRepo = repository.NewProductTemplateRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService

	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CustomProductRepo, c.TemplateRepo)
	c.CartService = service.NewCartService(c.Store)
	c.FavoritesService = service.NewFavoritesService(c.UserRepo, c.Store)
	c.CheckoutService = service.NewCheckoutService(c.CartService, c.FavoritesService, c.OrderRepo, c.Store)
	c.OrderService = service.NewOrderService(c.OrderRepo)
}
