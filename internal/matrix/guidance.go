package matrix

import (
	"fmt"

	"fraudmatrix/internal/models"
)

// Guidance explains what an empty quadrant would contain.
func Guidance(key Key) []string {
	bv, feas := key.BusinessValue, key.Feasibility

	switch {
	case bv == models.LevelHigh && feas == models.LevelLow:
		return []string{
			"High Business Value: Significant impact on business operations",
			"Low Feasibility: Difficult or challenging to implement",
			"These scenarios typically require substantial resources or face significant technical/operational barriers.",
		}
	case bv == models.LevelLow && feas == models.LevelHigh:
		return []string{
			"Low Business Value: Limited impact on business operations",
			"High Feasibility: Easy to implement",
			"These scenarios are typically quick fixes but may not provide significant business benefit.",
		}
	case bv == models.LevelLow && feas == models.LevelLow:
		return []string{
			"Low Business Value: Limited impact on business operations",
			"Low Feasibility: Difficult to implement",
			"These scenarios are generally not recommended for implementation due to poor cost-benefit ratio.",
		}
	default:
		return []string{
			fmt.Sprintf("This quadrant is for scenarios with %s Business Value and %s Feasibility.", bv, feas),
		}
	}
}
