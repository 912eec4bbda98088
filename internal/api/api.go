package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/equipviz/internal/api/controller"
	"github.com/ougirez/equipviz/internal/pkg/constants"
	"github.com/ougirez/equipviz/internal/pkg/store"
	"github.com/ougirez/equipviz/internal/service/auth"
	"github.com/ougirez/equipviz/internal/service/dataset"
	"github.com/spf13/viper"
)

type APIService struct {
	router         *echo.Echo
	datasetService *dataset.Service
	authService    *auth.Service
}

func (svc *APIService) Serve(addr string) error {
	return svc.router.Start(addr)
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Logger.SetLevel(log.INFO)
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{viper.GetString(constants.ViperCORSOrigin)},
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	svc.datasetService = dataset.NewDatasetService(store)
	svc.authService = auth.NewService(store)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.datasetService, svc.authService)

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", cntrl.SignupUser)
	authGroup.POST("/login", cntrl.LoginUser)
	authGroup.DELETE("/logout", cntrl.LogoutUser, svc.AuthMiddleware)

	api.GET("/user", cntrl.GetUser, svc.AuthMiddleware)

	datasets := api.Group("/datasets", svc.AuthMiddleware)
	datasets.POST("/upload", cntrl.UploadDataset)
	datasets.GET("/list", cntrl.GetUploadHistory)
	datasets.GET("/:id", cntrl.GetDatasetDetail)
	datasets.DELETE("/:id", cntrl.DeleteDataset)
	datasets.GET("/:id/export/csv", cntrl.ExportDatasetCSV)

	datasets.GET("/:id/equipment", cntrl.ListEquipment)
	datasets.POST("/:id/equipment", cntrl.AddEquipment)
	datasets.PUT("/:id/equipment/:equipment_id", cntrl.UpdateEquipment)
	datasets.DELETE("/:id/equipment/:equipment_id", cntrl.DeleteEquipment)

	return svc, nil
}
