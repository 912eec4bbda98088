package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name        string
		headers     []string
		wantMapping ColumnMap
		wantMissing []string
	}{
		{
			name:    "canonical headers",
			headers: []string{"Name", "Type", "Flowrate", "Pressure", "Temperature"},
			wantMapping: ColumnMap{
				ColumnName:        "Name",
				ColumnType:        "Type",
				ColumnFlowrate:    "Flowrate",
				ColumnPressure:    "Pressure",
				ColumnTemperature: "Temperature",
			},
		},
		{
			name:    "synonym variants",
			headers: []string{"equip_name", "Flow Rate", "Pressure", "Temp", "Type"},
			wantMapping: ColumnMap{
				ColumnName:        "equip_name",
				ColumnType:        "Type",
				ColumnFlowrate:    "Flow Rate",
				ColumnPressure:    "Pressure",
				ColumnTemperature: "Temp",
			},
		},
		{
			name:    "headers trimmed before matching",
			headers: []string{"  Equipment Name ", "type", " flowrate", "pressure ", "temperature"},
			wantMapping: ColumnMap{
				ColumnName:        "Equipment Name",
				ColumnType:        "type",
				ColumnFlowrate:    "flowrate",
				ColumnPressure:    "pressure",
				ColumnTemperature: "temperature",
			},
		},
		{
			name:        "missing pressure",
			headers:     []string{"Name", "Type", "Flowrate", "Temperature"},
			wantMissing: []string{ColumnPressure},
		},
		{
			name:        "case sensitive match",
			headers:     []string{"NAME", "TYPE", "FLOWRATE", "PRESSURE", "TEMPERATURE"},
			wantMissing: []string{ColumnName, ColumnType, ColumnFlowrate, ColumnPressure, ColumnTemperature},
		},
		{
			name:        "empty header set",
			headers:     nil,
			wantMissing: []string{ColumnName, ColumnType, ColumnFlowrate, ColumnPressure, ColumnTemperature},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, missing := ResolveColumns(tt.headers)
			require.Equal(t, tt.wantMissing, missing)
			if len(tt.wantMissing) == 0 {
				require.Equal(t, tt.wantMapping, resolved)
			}
		})
	}
}

func TestResolveColumnsPriority(t *testing.T) {
	// при нескольких подходящих заголовках берётся более приоритетный синоним
	resolved, missing := ResolveColumns([]string{"Equipment Name", "name", "Type", "Flowrate", "Pressure", "Temp"})
	require.Empty(t, missing)
	require.Equal(t, "Equipment Name", resolved[ColumnName])
}
