package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"jobboard-service/internal/application/interfaces"
)

// bodySlack covers multipart framing and form fields on top of the resume.
const bodySlack = 1 << 20

type Services struct {
	Users        interfaces.UserService
	Jobs         interfaces.JobService
	Applications interfaces.ApplicationService
	Dashboard    interfaces.DashboardService
}

type RouterConfig struct {
	APIPrefix      string
	CORSOrigins    []string
	MaxUploadBytes int64
}

func NewRouter(svc Services, cfg RouterConfig, log logrus.FieldLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 5 << 20
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dK", (maxUpload+bodySlack)/1024)))

	auth := NewAuthHandler(svc.Users)
	jobs := NewJobHandler(svc.Jobs)
	apps := NewApplicationHandler(svc.Applications, maxUpload)
	dashboard := NewDashboardHandler(svc.Dashboard)
	requireAuth := RequireAuth(svc.Users)

	api := e.Group(cfg.APIPrefix)

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	api.POST("/register", auth.Register)
	api.POST("/login", auth.Login)

	api.GET("/jobs", jobs.List)
	api.GET("/jobs/featured", jobs.Featured)
	api.GET("/jobs/:id", jobs.Get)
	api.POST("/jobs", jobs.Create, requireAuth)
	api.PUT("/jobs/:id", jobs.Update, requireAuth)
	api.DELETE("/jobs/:id", jobs.Delete, requireAuth)
	api.GET("/categories", jobs.Categories)
	api.GET("/skills", jobs.Skills)

	api.POST("/jobs/:id/apply", apps.Apply, requireAuth)
	api.GET("/applications", apps.List, requireAuth)
	api.GET("/applications/:id", apps.Get, requireAuth)
	api.PUT("/applications/:id/status", apps.SetStatus, requireAuth)
	api.GET("/uploads/resumes/:filename", apps.Resume, requireAuth)

	api.GET("/dashboard/stats", dashboard.Stats, requireAuth)

	return e
}
