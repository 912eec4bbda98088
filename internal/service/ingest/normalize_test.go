package ingest

import (
	"testing"

	"github.com/ougirez/equipviz/internal/domain/dto"
	"github.com/stretchr/testify/require"
)

func fullColumnMap() ColumnMap {
	return ColumnMap{
		ColumnName:        "equip_name",
		ColumnType:        "Type",
		ColumnFlowrate:    "Flow Rate",
		ColumnPressure:    "Pressure",
		ColumnTemperature: "Temp",
	}
}

func TestNormalizeRow(t *testing.T) {
	record, err := NormalizeRow(fullColumnMap(), dto.SourceRow{
		"equip_name": "Pump A",
		"Type":       "Pump",
		"Flow Rate":  " 12.5 ",
		"Pressure":   "3",
		"Temp":       "-10.25",
	}, 1)
	require.NoError(t, err)
	require.Equal(t, &dto.EquipmentRecord{
		Name:        "Pump A",
		Type:        "Pump",
		Flowrate:    12.5,
		Pressure:    3,
		Temperature: -10.25,
	}, record)
}

func TestNormalizeRowEmptyStringsAllowed(t *testing.T) {
	record, err := NormalizeRow(fullColumnMap(), dto.SourceRow{
		"equip_name": "",
		"Type":       "",
		"Flow Rate":  "0",
		"Pressure":   "0",
		"Temp":       "0",
	}, 1)
	require.NoError(t, err)
	require.Empty(t, record.Name)
	require.Empty(t, record.Type)
}

func TestNormalizeRowParseError(t *testing.T) {
	tests := []struct {
		name       string
		row        dto.SourceRow
		wantColumn string
	}{
		{
			name: "non-numeric flowrate",
			row: dto.SourceRow{
				"equip_name": "Pump A", "Type": "Pump",
				"Flow Rate": "fast", "Pressure": "3", "Temp": "20",
			},
			wantColumn: ColumnFlowrate,
		},
		{
			name: "missing pressure cell",
			row: dto.SourceRow{
				"equip_name": "Pump A", "Type": "Pump",
				"Flow Rate": "1", "Temp": "20",
			},
			wantColumn: ColumnPressure,
		},
		{
			name: "nan temperature",
			row: dto.SourceRow{
				"equip_name": "Pump A", "Type": "Pump",
				"Flow Rate": "1", "Pressure": "2", "Temp": "NaN",
			},
			wantColumn: ColumnTemperature,
		},
		{
			name: "infinite pressure",
			row: dto.SourceRow{
				"equip_name": "Pump A", "Type": "Pump",
				"Flow Rate": "1", "Pressure": "+Inf", "Temp": "20",
			},
			wantColumn: ColumnPressure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeRow(fullColumnMap(), tt.row, 7)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, 7, parseErr.Row)
			require.Equal(t, tt.wantColumn, parseErr.Column)
		})
	}
}
