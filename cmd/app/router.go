package main

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	_ "github.com/yifan996/Itinerary/docs"
	"github.com/yifan996/Itinerary/internal/api/controllers"
	"github.com/yifan996/Itinerary/internal/config"
	"github.com/yifan996/Itinerary/pkg/middleware"
	"github.com/yifan996/Itinerary/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	Logger              *zap.Logger
	ItineraryController *controllers.ItineraryController
	ProfileController   *controllers.ProfileController
	SurveyController    *controllers.SurveyController
	ChatController      *controllers.ChatController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if p.Config.HTTP.GinMode != "" {
		gin.SetMode(p.Config.HTTP.GinMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.Logging(p.Logger))
	r.Use(middleware.Recovery(p.Logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, p)
	r.NoRoute(staticHandler(p.Config.HTTP.StaticDir))

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.POST("/generate-itinerary", p.ItineraryController.GenerateItinerary)
	api.GET("/itinerary-history", p.ItineraryController.ItineraryHistory)
	api.POST("/save-profile", p.ProfileController.SaveProfile)
	api.POST("/save-survey", p.SurveyController.SaveSurvey)
	api.GET("/survey-history", p.SurveyController.SurveyHistory)
	api.POST("/chat", p.ChatController.Chat)
}

// staticHandler serves the front end. Unknown /api paths get a JSON 404 and
// directories are never listed.
func staticHandler(dir string) gin.HandlerFunc {
	root := gin.Dir(dir, false)
	files := http.FileServer(root)
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if p == "/api" || strings.HasPrefix(p, "/api/") {
			utils.RespondError(c, http.StatusNotFound, "Not found")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			utils.RespondError(c, http.StatusNotFound, "Not found")
			return
		}
		if !servable(root, path.Clean("/"+p)) {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}

// servable reports whether name is a file, or a directory with an index.html.
func servable(root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	info, err := f.Stat()
	_ = f.Close()
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	index, err := root.Open(path.Join(name, "index.html"))
	if err != nil {
		return false
	}
	_ = index.Close()
	return true
}
