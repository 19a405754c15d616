package garden

import (
	"slices"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// stages is ordered by ascending MinHeight
var stages = []domain.StageInfo{
	{Name: StageSeed, Symbol: "🌱", MinHeight: 0},
	{Name: StageSprout, Symbol: "🌿", MinHeight: 5},
	{Name: StageYoung, Symbol: "🪴", MinHeight: 15},
	{Name: StageMature, Symbol: "🌳", MinHeight: 30},
	{Name: StageBlooming, Symbol: "🌸", MinHeight: 50},
}

// Stage returns the highest band whose MinHeight does not exceed height.
// Heights below zero map to the first band.
func Stage(height int) domain.StageInfo {
	for i := len(stages) - 1; i >= 0; i-- {
		if stages[i].MinHeight <= height {
			return stages[i]
		}
	}
	return stages[0]
}

// Stages returns the stage bands in ascending order
func Stages() []domain.StageInfo {
	return slices.Clone(stages)
}
