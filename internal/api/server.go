package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/skyblocklegends/api/docs"
	v1 "github.com/skyblocklegends/api/internal/api/handler/v1"
	"github.com/skyblocklegends/api/internal/api/middleware"
	"github.com/skyblocklegends/api/internal/config"
	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/repository"
	"github.com/skyblocklegends/api/internal/repository/dao"
	"github.com/skyblocklegends/api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	serverHandler := s.initServerHandler(db)
	newsHandler := s.initNewsHandler(db)
	seasonHandler := s.initSeasonHandler(db)
	siteHandler := s.initSiteHandler(db)
	storeHandler := s.initStoreHandler(db)
	s.MountHandlers(authHandler, userHandler, serverHandler, newsHandler, seasonHandler, siteHandler, storeHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initServerHandler(db *gorm.DB) *v1.ServerHandler {
	serverDAO := dao.NewServerConfigDAO(db)
	repo := repository.NewServerConfigRepository(serverDAO)
	svc := service.NewServerService(repo)
	handler := v1.NewServerHandler(svc)

	return handler
}

func (s *Server) initNewsHandler(db *gorm.DB) *v1.NewsHandler {
	newsDAO := dao.NewNewsDAO(db)
	repo := repository.NewNewsRepository(newsDAO)
	svc := service.NewNewsService(repo)
	handler := v1.NewNewsHandler(svc)

	return handler
}

func (s *Server) initSeasonHandler(db *gorm.DB) *v1.SeasonHandler {
	seasonDAO := dao.NewSeasonDAO(db)
	repo := repository.NewSeasonRepository(seasonDAO)
	svc := service.NewSeasonService(repo)
	handler := v1.NewSeasonHandler(svc)

	return handler
}

func (s *Server) initSiteHandler(db *gorm.DB) *v1.SiteHandler {
	siteDAO := dao.NewSiteDAO(db)
	repo := repository.NewSiteRepository(siteDAO)
	svc := service.NewSiteService(repo)
	handler := v1.NewSiteHandler(svc)

	return handler
}

func (s *Server) initStoreHandler(db *gorm.DB) *v1.StoreHandler {
	storeDAO := dao.NewStoreDAO(db)
	repo := repository.NewStoreRepository(storeDAO)
	svc := service.NewStoreService(repo)
	handler := v1.NewStoreHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	serverHandler *v1.ServerHandler,
	newsHandler *v1.NewsHandler,
	seasonHandler *v1.SeasonHandler,
	siteHandler *v1.SiteHandler,
	storeHandler *v1.StoreHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/server/status", serverHandler.HandleGetStatus)
		public.GET("/news", newsHandler.HandleGetNews)
		public.GET("/news/featured", newsHandler.HandleGetFeaturedNews)
		public.GET("/news/:articleID", newsHandler.HandleGetArticle)
		public.GET("/seasons", seasonHandler.HandleGetSeasons)
		public.GET("/seasons/current", seasonHandler.HandleGetCurrentSeason)
		public.GET("/team", siteHandler.HandleGetTeam)
		public.GET("/voting-sites", siteHandler.HandleGetVotingSites)
		public.GET("/gallery", siteHandler.HandleGetGallery)
		public.GET("/store/items", storeHandler.HandleGetStoreItems)
	}

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	// Content management is open to moderators, admins can do everything.
	content := s.Router.Group(basePath+"/admin",
		authenticator.VerifyJWT(),
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleModerator))
	{
		content.GET("/server/config", serverHandler.HandleGetConfig)
		content.PUT("/server/config", serverHandler.HandleUpdateConfig)

		content.GET("/news", newsHandler.HandleListArticles)
		content.POST("/news", newsHandler.HandleCreateArticle)
		content.PUT("/news/:articleID", newsHandler.HandleUpdateArticle)
		content.DELETE("/news/:articleID", newsHandler.HandleDeleteArticle)

		content.GET("/seasons", seasonHandler.HandleListSeasons)
		content.POST("/seasons", seasonHandler.HandleCreateSeason)
		content.PUT("/seasons/:seasonID", seasonHandler.HandleUpdateSeason)
		content.DELETE("/seasons/:seasonID", seasonHandler.HandleDeleteSeason)

		content.GET("/team", siteHandler.HandleListTeam)
		content.POST("/team", siteHandler.HandleCreateTeamMember)
		content.PUT("/team/:memberID", siteHandler.HandleUpdateTeamMember)
		content.DELETE("/team/:memberID", siteHandler.HandleDeleteTeamMember)

		content.GET("/voting-sites", siteHandler.HandleListVotingSites)
		content.POST("/voting-sites", siteHandler.HandleCreateVotingSite)
		content.PUT("/voting-sites/:siteID", siteHandler.HandleUpdateVotingSite)
		content.DELETE("/voting-sites/:siteID", siteHandler.HandleDeleteVotingSite)

		content.GET("/gallery", siteHandler.HandleListGallery)
		content.POST("/gallery", siteHandler.HandleCreateGalleryImage)
		content.PUT("/gallery/:imageID", siteHandler.HandleUpdateGalleryImage)
		content.DELETE("/gallery/:imageID", siteHandler.HandleDeleteGalleryImage)

		content.GET("/store/items", storeHandler.HandleListStoreItems)
		content.POST("/store/items", storeHandler.HandleCreateStoreItem)
		content.PUT("/store/items/:itemID", storeHandler.HandleUpdateStoreItem)
		content.DELETE("/store/items/:itemID", storeHandler.HandleDeleteStoreItem)
	}

	// Users and orders stay admin only.
	admin := s.Router.Group(basePath+"/admin",
		authenticator.VerifyJWT(),
		middleware.RequireRoles(domain.RoleAdmin))
	{
		admin.GET("/users", userHandler.HandleListUsers)
		admin.POST("/users", userHandler.HandleCreateUser)
		admin.PUT("/users/:userID", userHandler.HandleUpdateUser)
		admin.DELETE("/users/:userID", userHandler.HandleDeleteUser)

		admin.GET("/orders", storeHandler.HandleListOrders)
		admin.POST("/orders", storeHandler.HandleCreateOrder)
		admin.PUT("/orders/:orderID", storeHandler.HandleUpdateOrder)
		admin.DELETE("/orders/:orderID", storeHandler.HandleDeleteOrder)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "SkyBlock Legends API"
	docs.SwaggerInfo.Description = "Community website backend for the SkyBlock Legends Minecraft server."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
