package leaderboard

import (
	"math"

	"github.com/sukoonsphere/backend/internal/modules/leaderboard/dto"
)

// Rank thresholds on all-time points. Deletions subtract from the total, so
// a user close to a threshold can drop back below it.
const (
	PointsLegend      = 20000
	PointsVeteran     = 8000
	PointsLuminary    = 3000
	PointsAdvocate    = 600
	PointsContributor = 100
	PointsNewcomer    = 0
)

// RankFor maps an all-time point total to its rank status.
func RankFor(totalPoints int) dto.RankStatus {
	status := dto.RankStatus{CurrentPoints: totalPoints}

	switch {
	case totalPoints >= PointsLegend:
		status.RankName = "Legend"
		status.NextRank = "Max Level"
		status.TargetPoints = PointsLegend
		status.Progress = 100

	case totalPoints >= PointsVeteran:
		status.RankName = "Veteran"
		status.NextRank = "Legend"
		status.TargetPoints = PointsLegend
		status.Progress = (float64(totalPoints) / float64(PointsLegend)) * 100

	case totalPoints >= PointsLuminary:
		status.RankName = "Luminary"
		status.NextRank = "Veteran"
		status.TargetPoints = PointsVeteran
		status.Progress = (float64(totalPoints) / float64(PointsVeteran)) * 100

	case totalPoints >= PointsAdvocate:
		status.RankName = "Advocate"
		status.NextRank = "Luminary"
		status.TargetPoints = PointsLuminary
		status.Progress = (float64(totalPoints) / float64(PointsLuminary)) * 100

	case totalPoints >= PointsContributor:
		status.RankName = "Contributor"
		status.NextRank = "Advocate"
		status.TargetPoints = PointsAdvocate
		status.Progress = (float64(totalPoints) / float64(PointsAdvocate)) * 100

	default:
		status.RankName = "Newcomer"
		status.NextRank = "Contributor"
		status.TargetPoints = PointsContributor
		status.Progress = (float64(totalPoints) / float64(PointsContributor)) * 100
	}

	status.Progress = math.Round(status.Progress*100) / 100
	return status
}
