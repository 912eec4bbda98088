package controller

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/equipviz/internal/domain"
	"github.com/ougirez/equipviz/internal/domain/dto"
	"github.com/ougirez/equipviz/internal/pkg/constants"
	"github.com/ougirez/equipviz/internal/service/ingest"
)

// UploadDataset принимает multipart CSV и прогоняет его через конвейер
// загрузки. Разбор файла — дело контроллера; движок получает уже общий вид
// «заголовки + строки».
func (c *Controller) UploadDataset(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return constants.ErrNoFileProvided
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return constants.ErrNotCSV
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer func() {
		_ = src.Close()
	}()

	headers, rows, err := readCSV(src)
	if err != nil {
		return err
	}

	created, equipment, err := c.datasetService.Ingest(
		ctx.Request().Context(), currentUserID(ctx), fileHeader.Filename, headers, rows)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, domain.UploadResponse{
		Message:       "File uploaded successfully",
		DatasetID:     created.ID,
		Summary:       created.Summary(),
		EquipmentList: equipment,
	})
}

// readCSV читает весь файл в память: потоковая загрузка не поддерживается.
func readCSV(r io.Reader) ([]string, []dto.SourceRow, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ingest.ErrEmptyInput
	}
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "failed to parse CSV: "+err.Error())
	}

	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var rows []dto.SourceRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "failed to parse CSV: "+err.Error())
		}

		row := make(dto.SourceRow, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}
