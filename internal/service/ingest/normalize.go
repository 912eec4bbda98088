package ingest

import (
	"math"
	"strconv"
	"strings"

	"github.com/ougirez/equipviz/internal/domain/dto"
)

// NormalizeRow переводит одну исходную строку в типизированную запись по
// полному маппингу колонок. rowIdx — номер строки данных (с единицы), попадает
// в ParseError. Нечисловая ячейка в числовой колонке фатальна для всей
// загрузки.
func NormalizeRow(cols ColumnMap, row dto.SourceRow, rowIdx int) (*dto.EquipmentRecord, error) {
	record := &dto.EquipmentRecord{
		Name: row[cols[ColumnName]],
		Type: row[cols[ColumnType]],
	}

	var err error
	if record.Flowrate, err = parseNumericCell(cols, row, ColumnFlowrate, rowIdx); err != nil {
		return nil, err
	}
	if record.Pressure, err = parseNumericCell(cols, row, ColumnPressure, rowIdx); err != nil {
		return nil, err
	}
	if record.Temperature, err = parseNumericCell(cols, row, ColumnTemperature, rowIdx); err != nil {
		return nil, err
	}

	return record, nil
}

func parseNumericCell(cols ColumnMap, row dto.SourceRow, canonical string, rowIdx int) (float64, error) {
	raw := strings.TrimSpace(row[cols[canonical]])

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, &ParseError{Row: rowIdx, Column: canonical, Value: raw}
	}

	return val, nil
}
