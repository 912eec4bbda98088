package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/equipviz/internal/domain"
	"github.com/ougirez/equipviz/internal/pkg/constants"
)

const dateLayout = "2006-01-02"

// ListEquipment отдаёт строки датасета; при заданных start/end — подмножество
// по recorded_at со свежепосчитанной сводкой.
func (c *Controller) ListEquipment(ctx echo.Context) error {
	datasetID, err := datasetIDParam(ctx)
	if err != nil {
		return err
	}

	start, end, err := parseDateRange(ctx.QueryParams().Get("start"), ctx.QueryParams().Get("end"))
	if err != nil {
		return err
	}

	equipment, summary, err := c.datasetService.FilterEquipment(
		ctx.Request().Context(), currentUserID(ctx), datasetID, start, end)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.FilterResponse{
		Summary:       summary,
		EquipmentList: equipment,
	})
}

func (c *Controller) AddEquipment(ctx echo.Context) error {
	datasetID, err := datasetIDParam(ctx)
	if err != nil {
		return err
	}

	request := new(domain.EquipmentRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	added, summary, err := c.datasetService.AddEquipment(
		ctx.Request().Context(), currentUserID(ctx), datasetID, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, domain.EquipmentMutationResponse{
		Equipment: added,
		Summary:   summary,
	})
}

func (c *Controller) UpdateEquipment(ctx echo.Context) error {
	datasetID, err := datasetIDParam(ctx)
	if err != nil {
		return err
	}
	equipmentID, err := equipmentIDParam(ctx)
	if err != nil {
		return err
	}

	request := new(domain.EquipmentRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	changed, summary, err := c.datasetService.UpdateEquipment(
		ctx.Request().Context(), currentUserID(ctx), datasetID, equipmentID, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.EquipmentMutationResponse{
		Equipment: changed,
		Summary:   summary,
	})
}

func (c *Controller) DeleteEquipment(ctx echo.Context) error {
	datasetID, err := datasetIDParam(ctx)
	if err != nil {
		return err
	}
	equipmentID, err := equipmentIDParam(ctx)
	if err != nil {
		return err
	}

	summary, err := c.datasetService.DeleteEquipment(
		ctx.Request().Context(), currentUserID(ctx), datasetID, equipmentID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.EquipmentMutationResponse{Summary: summary})
}

func equipmentIDParam(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("equipment_id"), 10, 64)
	if err != nil {
		return 0, constants.ErrNotFound
	}
	return id, nil
}

// parseDateRange: границы включительно, end расширяется до конца суток.
// Отсутствующая граница значит «без ограничения» с этой стороны.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start := time.Time{}
	end := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

	if startStr != "" {
		parsed, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return start, end, echo.NewHTTPError(http.StatusBadRequest, "invalid start date: "+startStr)
		}
		start = parsed
	}

	if endStr != "" {
		parsed, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return start, end, echo.NewHTTPError(http.StatusBadRequest, "invalid end date: "+endStr)
		}
		end = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	return start, end, nil
}
