package salary

import (
	"log/slog"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/salary"
)

// solveGrossForNet iteratively refines a gross amount until the forward
// calculation lands within tolerance of the target net. The net is a
// monotone, near-linear function of gross for every contract type, so
// nudging gross by the signed difference converges in a handful of
// iterations for realistic salaries. When the cap is hit the last
// breakdown is returned as a documented approximation rather than an
// error.
func solveGrossForNet(forward func(gross int64) salary.Breakdown, targetNet, start, tolerance int64, maxIterations int) salary.Breakdown {
	gross := start
	var breakdown salary.Breakdown

	for i := 0; i < maxIterations; i++ {
		breakdown = forward(gross)
		diff := targetNet - breakdown.Net
		if abs(diff) < tolerance {
			return breakdown
		}
		gross += diff
	}

	slog.Warn("net to gross solve hit iteration cap, returning best approximation",
		slog.Int64("target_net", targetNet),
		slog.Int64("last_net", breakdown.Net),
		slog.Int("iterations", maxIterations),
	)
	return breakdown
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
