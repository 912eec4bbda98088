package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/equipviz/internal/domain"
	"github.com/ougirez/equipviz/internal/pkg/constants"
)

func (c *Controller) GetUploadHistory(ctx echo.Context) error {
	datasets, err := c.datasetService.History(ctx.Request().Context(), currentUserID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.HistoryResponse{
		Count:    len(datasets),
		Datasets: datasets,
	})
}

func (c *Controller) GetDatasetDetail(ctx echo.Context) error {
	datasetID, err := datasetIDParam(ctx)
	if err != nil {
		return err
	}

	ds, equipment, err := c.datasetService.Detail(ctx.Request().Context(), currentUserID(ctx), datasetID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.DatasetDetailResponse{
		Dataset:       ds,
		Summary:       ds.Summary(),
		EquipmentList: equipment,
	})
}

func (c *Controller) DeleteDataset(ctx echo.Context) error {
	datasetID, err := datasetIDParam(ctx)
	if err != nil {
		return err
	}

	if err := c.datasetService.Delete(ctx.Request().Context(), currentUserID(ctx), datasetID); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "dataset deleted"})
}

func datasetIDParam(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, constants.ErrNotFound
	}
	return id, nil
}
