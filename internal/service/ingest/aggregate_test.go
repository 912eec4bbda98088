package ingest

import (
	"testing"

	"github.com/ougirez/equipviz/internal/domain"
	"github.com/ougirez/equipviz/internal/domain/dto"
	"github.com/stretchr/testify/require"
)

func TestComputeEmptySet(t *testing.T) {
	summary := Compute(nil)

	require.Equal(t, 0, summary.TotalEquipment)
	require.Equal(t, 0.0, summary.AvgFlowrate)
	require.Equal(t, 0.0, summary.AvgPressure)
	require.Equal(t, 0.0, summary.AvgTemperature)
	require.NotNil(t, summary.TypeDistribution)
	require.Empty(t, summary.TypeDistribution)
}

func TestComputeMeansAndDistribution(t *testing.T) {
	records := []*dto.EquipmentRecord{
		{Name: "Pump A", Type: "Pump", Flowrate: 10, Pressure: 1.1, Temperature: 20},
		{Name: "Pump B", Type: "Pump", Flowrate: 20, Pressure: 2.2, Temperature: -10},
		{Name: "Valve C", Type: "Valve", Flowrate: 31, Pressure: 3.3, Temperature: 50},
	}

	summary := Compute(records)

	require.Equal(t, 3, summary.TotalEquipment)
	require.Equal(t, 20.33, summary.AvgFlowrate)
	require.Equal(t, 2.2, summary.AvgPressure)
	require.Equal(t, 20.0, summary.AvgTemperature)
	require.Equal(t, domain.TypeDistribution{"Pump": 2, "Valve": 1}, summary.TypeDistribution)
}

func TestComputeRoundsHalfUp(t *testing.T) {
	records := []*dto.EquipmentRecord{
		{Type: "Pump", Flowrate: 0.1, Pressure: 0.05, Temperature: 0.005},
		{Type: "Pump", Flowrate: 0.25, Pressure: 0.04, Temperature: 0.004},
	}

	summary := Compute(records)

	// 0.35/2 = 0.175 -> 0.18
	require.Equal(t, 0.18, summary.AvgFlowrate)
	// 0.09/2 = 0.045 -> 0.05
	require.Equal(t, 0.05, summary.AvgPressure)
	// 0.009/2 = 0.0045 -> 0.0
	require.Equal(t, 0.0, summary.AvgTemperature)
}

func TestComputeDeterministic(t *testing.T) {
	records := []*dto.EquipmentRecord{
		{Type: "Pump", Flowrate: 1.17, Pressure: 2.29, Temperature: 3.31},
		{Type: "Valve", Flowrate: 4.43, Pressure: 5.47, Temperature: 6.53},
		{Type: "Pump", Flowrate: 7.59, Pressure: 8.61, Temperature: 9.67},
	}

	first := Compute(records)
	second := Compute(records)
	require.Equal(t, first, second)
}

func TestEquipmentRecords(t *testing.T) {
	items := []*domain.Equipment{
		{Name: "Pump A", EquipmentType: "Pump", Flowrate: 1, Pressure: 2, Temperature: 3},
		{Name: "Valve B", EquipmentType: "Valve", Flowrate: 4, Pressure: 5, Temperature: 6},
	}

	records := EquipmentRecords(items)

	require.Len(t, records, 2)
	require.Equal(t, &dto.EquipmentRecord{Name: "Pump A", Type: "Pump", Flowrate: 1, Pressure: 2, Temperature: 3}, records[0])
	require.Equal(t, &dto.EquipmentRecord{Name: "Valve B", Type: "Valve", Flowrate: 4, Pressure: 5, Temperature: 6}, records[1])
}
