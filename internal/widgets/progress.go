package widgets

import (
	"fmt"
	"math"
)

// Progress describes where the taker is in an exam. Current is zero based.
// The position and the answered count are independent: a taker on question
// 3 may have answered questions 1 and 5.
type Progress struct {
	Current  int
	Total    int
	Answered int
}

// Percent is (Current+1)/Total as a percentage, 0 for an empty exam. The
// product is taken before the division so whole percentages stay exact.
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Current+1) * 100 / float64(p.Total)
}

func (p Progress) PercentLabel() string {
	return fmt.Sprintf("%d%%", int(math.Round(p.Percent())))
}

func (p Progress) AnsweredLabel() string {
	return fmt.Sprintf("%d/%d", p.Answered, p.Total)
}
