package targeting

import (
	"fmt"
	"sort"
)

// Standard range ids, resolved by direct mapping rather than a count table
const (
	RangeSides     = 2
	RangeSelfSides = 3
	RangeParty     = 4
	RangeEnemyAll  = 8
	RangeSelf      = 21
)

// enemyRandomTargetCount maps random-enemy range ids to how many enemies they pick
var enemyRandomTargetCount = map[int]int{
	16: 3,
	17: 6,
	19: 4,
	20: 5,
	23: 2,
}

// enemyNearTargetCount maps clustered near-enemy range ids to how many enemies they hit
var enemyNearTargetCount = map[int]int{
	5:  1,
	6:  2,
	7:  3,
	32: 4,
	33: 5,
}

// maxDistanceFromCenter maps a near range's target count to its reach in columns
var maxDistanceFromCenter = map[int]int{
	1: 1,
	2: 1,
	3: 1,
	4: 2,
	5: 2,
}

var standardRangeIDs = []int{RangeSides, RangeSelfSides, RangeParty, RangeEnemyAll, RangeSelf}

func init() {
	if err := ValidateTables(); err != nil {
		panic(err)
	}
}

// ValidateTables checks that no range id belongs to more than one category
// and that every near range count has a reach.
func ValidateTables() error {
	seen := make(map[int]string)
	claim := func(id int, category string) error {
		if other, ok := seen[id]; ok {
			return fmt.Errorf("range id %d is both %s and %s", id, other, category)
		}
		seen[id] = category
		return nil
	}

	for id := range enemyRandomTargetCount {
		if err := claim(id, "enemy random"); err != nil {
			return err
		}
	}
	for id, count := range enemyNearTargetCount {
		if err := claim(id, "enemy near"); err != nil {
			return err
		}
		if _, ok := maxDistanceFromCenter[count]; !ok {
			return fmt.Errorf("near range %d has no max distance for %d targets", id, count)
		}
	}
	for _, id := range standardRangeIDs {
		if err := claim(id, "standard"); err != nil {
			return err
		}
	}
	return nil
}

// KnownRangeIDs returns every resolvable range id in ascending order
func KnownRangeIDs() []int {
	ids := make([]int, 0, len(enemyRandomTargetCount)+len(enemyNearTargetCount)+len(standardRangeIDs))
	for id := range enemyRandomTargetCount {
		ids = append(ids, id)
	}
	for id := range enemyNearTargetCount {
		ids = append(ids, id)
	}
	ids = append(ids, standardRangeIDs...)
	sort.Ints(ids)
	return ids
}
