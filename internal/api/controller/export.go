package controller

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/equipviz/internal/service/ingest"
)

// ExportDatasetCSV отдаёт финальный набор строк датасета как CSV.
// Движок только поставляет строки; PDF-отчёты рендерит внешний сервис.
func (c *Controller) ExportDatasetCSV(ctx echo.Context) error {
	datasetID, err := datasetIDParam(ctx)
	if err != nil {
		return err
	}

	ds, equipment, err := c.datasetService.Detail(ctx.Request().Context(), currentUserID(ctx), datasetID)
	if err != nil {
		return err
	}

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/csv")
	resp.Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="equipment_%d.csv"`, ds.ID))
	resp.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(resp)
	if err := writer.Write(ingest.CanonicalColumns); err != nil {
		return err
	}

	for _, item := range equipment {
		record := []string{
			item.Name,
			item.EquipmentType,
			strconv.FormatFloat(item.Flowrate, 'f', -1, 64),
			strconv.FormatFloat(item.Pressure, 'f', -1, 64),
			strconv.FormatFloat(item.Temperature, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
