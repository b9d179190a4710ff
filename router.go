// file: router.go
package main

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"ycfl-league/config"
	"ycfl-league/controllers"
	"ycfl-league/metrics"
	"ycfl-league/middleware"
	"ycfl-league/services"
)

const sessionName = "ycfl_session"

// setupRouter wires every page and API route onto a fresh engine.
func setupRouter(cfg *config.Config, league services.LeagueServiceInterface, publisher metrics.Publisher, templatesGlob string) (*gin.Engine, error) {
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Frame-Options", "SAMEORIGIN")
		c.Next()
	})

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(sessionName, store))
	router.Use(middleware.Locale())

	router.SetFuncMap(controllers.TemplateFuncs())
	router.LoadHTMLGlob(templatesGlob)

	authController, err := controllers.NewAuthController(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	pageController := controllers.NewPageController(league, cfg.RegisterURL())
	registrationController := controllers.NewRegistrationController(league, cfg.MaxUploadBytes())
	adminController := controllers.NewAdminController(league, publisher, cfg.MaxUploadBytes())
	apiController := controllers.NewAPIController(league)

	// Public pages
	router.GET("/health", controllers.Health)
	router.GET("/", pageController.Home)
	router.GET("/standings", pageController.Standings)
	router.GET("/qrcode", pageController.GetQRCode)
	router.GET("/lang/toggle", pageController.ToggleLanguage)
	router.GET("/register", registrationController.RegisterPage)
	router.POST("/register", registrationController.SubmitRegistration)

	router.GET("/admin/login", authController.LoginPage)
	router.POST("/admin/login", authController.Login)
	router.GET("/admin/logout", authController.Logout)

	// Admin pages
	admin := router.Group("/admin", middleware.AdminRequired())
	{
		admin.GET("", adminController.AdminPanel)
		admin.POST("/players/:id/approve", adminController.ApprovePlayer)
		admin.POST("/players/:id/reject", adminController.RejectPlayer)
		admin.POST("/players/:id/delete", adminController.DeletePlayer)
		admin.POST("/players/:id/feature", adminController.FeaturePlayer)
		admin.POST("/players/:id/assign", adminController.AssignPlayer)
		admin.POST("/teams/:id", adminController.UpdateTeam)
		admin.POST("/gallery", adminController.UploadGalleryImage)
		admin.POST("/gallery/:id/delete", adminController.DeleteGalleryImage)
		admin.POST("/reset", adminController.ResetLeague)
	}

	// JSON API
	api := router.Group("/api", middleware.CORS(cfg.CORSOrigins))
	{
		api.GET("/standings", apiController.Standings)
		api.GET("/standings.csv", apiController.StandingsCSV)
		api.GET("/standings.xlsx", apiController.StandingsXLSX)
		api.GET("/teams", apiController.Teams)
		api.GET("/players/featured", apiController.FeaturedPlayers)
		api.GET("/gallery", apiController.Gallery)
		api.POST("/players", registrationController.APIRegister)

		adminAPI := api.Group("/admin", middleware.AdminRequired())
		{
			adminAPI.GET("/players", adminController.APIListPlayers)
			adminAPI.POST("/players/:id/approve", adminController.APIApprove)
			adminAPI.POST("/players/:id/reject", adminController.APIReject)
			adminAPI.POST("/players/:id/feature", adminController.APIToggleFeatured)
			adminAPI.DELETE("/players/:id", adminController.APIDeletePlayer)
			adminAPI.PUT("/players/:id/team", adminController.APIAssign)
			adminAPI.PATCH("/teams/:id", adminController.APIUpdateTeam)
			adminAPI.POST("/gallery", adminController.APIAddImage)
			adminAPI.DELETE("/gallery/:id", adminController.APIDeleteImage)
		}
	}

	return router, nil
}
