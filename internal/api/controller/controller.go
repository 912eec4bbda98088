package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/equipviz/internal/pkg/constants"
	"github.com/ougirez/equipviz/internal/service/auth"
	"github.com/ougirez/equipviz/internal/service/dataset"
)

type Controller struct {
	datasetService *dataset.Service
	authService    *auth.Service
}

func NewController(datasetService *dataset.Service, authService *auth.Service) *Controller {
	return &Controller{datasetService: datasetService, authService: authService}
}

func currentUserID(ctx echo.Context) int64 {
	id, _ := ctx.Get(constants.CtxKeyUserID).(int64)
	return id
}
