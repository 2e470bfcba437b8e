package memory

import (
	"github.com/chris/risk-pool-lending/pkg/models"
)

// SelectPool scans pools in ascending id order and picks the eligible pool
// whose risk level is closest to the credit score. A pool is eligible when
// its available funds cover amount. Ties on distance go to the first pool
// encountered, i.e. the lowest id; this ordering is an observable contract
// and must not be changed. The second return value is false when no pool is
// eligible.
func SelectPool(score, amount uint64, pools []*models.RiskPool) (uint64, bool) {
	var (
		bestID   uint64
		bestDist uint64
		found    bool
	)
	for _, pool := range pools {
		if pool.AvailableFunds < amount {
			continue
		}
		dist := riskDistance(score, pool.RiskLevel)
		if !found || dist < bestDist {
			bestID = pool.Id
			bestDist = dist
			found = true
		}
	}
	return bestID, found
}

// riskDistance is |score - riskLevel| on unsigned operands.
func riskDistance(score, riskLevel uint64) uint64 {
	if score > riskLevel {
		return score - riskLevel
	}
	return riskLevel - score
}
