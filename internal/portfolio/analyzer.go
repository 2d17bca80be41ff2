// Package portfolio computes probability-weighted monetary outcomes for a
// simulated multi-box purchase, bucketed into three ROI risk bands. Analysis
// is a pure function over the supplied strategy; nothing is persisted.
package portfolio

import (
	"fmt"
	"sort"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

// Allocation pairs a box with how many units the buyer selects
type Allocation struct {
	Box      domain.Box `json:"box"`
	Quantity int        `json:"quantity"`
}

// Strategy is the full simulated purchase handed to Analyze
type Strategy struct {
	Allocations []Allocation `json:"boxes"`
	TotalCost   float64      `json:"total_cost"`
}

// ScenarioItem is one prize annotated with its source box and computed ROI
type ScenarioItem struct {
	Name       string  `json:"name"`
	BoxName    string  `json:"box_name"`
	Value      float64 `json:"value"`
	DropChance float64 `json:"drop_chance"`
	ROI        float64 `json:"roi"`
}

// Calculation is the per-scenario breakdown surfaced to the simulator UI
type Calculation struct {
	Items       []ScenarioItem `json:"items"`
	Methodology string         `json:"methodology"`
	TotalItems  int            `json:"total_items"`
	AvgReturn   float64        `json:"avg_return"`
}

// Scenario is one of exactly three outcome buckets. Probability is on a
// 0-100 scale; Amount is the portfolio-wide profit/loss as a signed currency
// string.
type Scenario struct {
	Bucket      Bucket      `json:"scenario"`
	Probability float64     `json:"probability"`
	Amount      string      `json:"amount"`
	Calculation Calculation `json:"calculation"`
}

// bucketAccumulator collects the weighted mass for one ROI band
type bucketAccumulator struct {
	weightedChance float64
	weightedValue  float64
	items          []ScenarioItem
}

// Analyze computes the three outcome scenarios (loss, profitable, jackpot, in
// that fixed order) for a weighted portfolio. Drop chances are weighted by
// quantity before normalizing, so mixed box types and counts still yield one
// coherent distribution; the normalization base is the actual accumulated
// mass, not an assumed 100. Profit/loss is portfolio-wide: average return per
// box times total boxes, minus total cost. A zero-quantity portfolio returns
// an empty slice. Never returns an error or NaN.
func Analyze(strategy Strategy) []Scenario {
	totalBoxes := 0
	for _, alloc := range strategy.Allocations {
		totalBoxes += alloc.Quantity
	}
	if totalBoxes == 0 {
		return []Scenario{}
	}

	buckets := map[Bucket]*bucketAccumulator{
		BucketLoss:       {},
		BucketProfitable: {},
		BucketJackpot:    {},
	}

	for _, alloc := range strategy.Allocations {
		for _, item := range alloc.Box.Items {
			roi := 0.0
			if alloc.Box.Price > 0 {
				roi = item.Value / alloc.Box.Price
			}

			bucket := classify(roi)
			weightedChance := item.DropChance * float64(alloc.Quantity)

			acc := buckets[bucket]
			acc.weightedChance += weightedChance
			acc.weightedValue += item.Value * weightedChance
			acc.items = append(acc.items, ScenarioItem{
				Name:       item.Name,
				BoxName:    alloc.Box.Name,
				Value:      item.Value,
				DropChance: item.DropChance,
				ROI:        roi,
			})
		}
	}

	totalMass := buckets[BucketLoss].weightedChance +
		buckets[BucketProfitable].weightedChance +
		buckets[BucketJackpot].weightedChance

	scenarios := make([]Scenario, 0, 3)
	for _, bucket := range []Bucket{BucketLoss, BucketProfitable, BucketJackpot} {
		scenarios = append(scenarios, buildScenario(
			bucket, buckets[bucket], totalMass, totalBoxes, strategy.TotalCost))
	}
	return scenarios
}

// classify assigns an ROI to exactly one bucket
func classify(roi float64) Bucket {
	switch {
	case roi < ProfitableROI:
		return BucketLoss
	case roi < JackpotROI:
		return BucketProfitable
	}
	return BucketJackpot
}

func buildScenario(bucket Bucket, acc *bucketAccumulator, totalMass float64, totalBoxes int, totalCost float64) Scenario {
	sortItems(bucket, acc.items)

	shown := acc.items
	if len(shown) > TopItemsShown {
		shown = shown[:TopItemsShown]
	}

	// An empty bucket (or an empty portfolio) degrades to the worst case:
	// zero probability, zero average return, the whole cost lost.
	if acc.weightedChance == 0 || totalMass == 0 {
		return Scenario{
			Bucket:      bucket,
			Probability: 0,
			Amount:      formatAmount(-totalCost),
			Calculation: Calculation{
				Items:       shown,
				Methodology: methodology(bucket, totalBoxes, totalCost),
				TotalItems:  len(acc.items),
				AvgReturn:   0,
			},
		}
	}

	avgReturnPerBox := acc.weightedValue / acc.weightedChance
	totalReturn := avgReturnPerBox * float64(totalBoxes)
	profitLoss := totalReturn - totalCost
	probability := 100 * acc.weightedChance / totalMass

	return Scenario{
		Bucket:      bucket,
		Probability: probability,
		Amount:      formatAmount(profitLoss),
		Calculation: Calculation{
			Items:       shown,
			Methodology: methodology(bucket, totalBoxes, totalCost),
			TotalItems:  len(acc.items),
			AvgReturn:   avgReturnPerBox,
		},
	}
}

// sortItems orders loss items worst-first and the winning buckets best-first
func sortItems(bucket Bucket, items []ScenarioItem) {
	if bucket == BucketLoss {
		sort.SliceStable(items, func(i, j int) bool { return items[i].Value < items[j].Value })
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Value > items[j].Value })
}

// methodology names the ROI band and the total portfolio cost for display
func methodology(bucket Bucket, totalBoxes int, totalCost float64) string {
	var band string
	switch bucket {
	case BucketLoss:
		band = fmt.Sprintf("items returning under %.1fx the box price", ProfitableROI)
	case BucketProfitable:
		band = fmt.Sprintf("items returning %.1fx to %.1fx the box price", ProfitableROI, JackpotROI)
	default:
		band = fmt.Sprintf("items returning %.1fx the box price or more", JackpotROI)
	}
	return fmt.Sprintf("Probability-weighted return from %s, across %d boxes costing %s total",
		band, totalBoxes, formatAmount(totalCost))
}

// formatAmount renders a signed currency string, e.g. "-$5.00" or "+$12.50".
// Zero renders unsigned.
func formatAmount(amount float64) string {
	switch {
	case amount < 0:
		return fmt.Sprintf("-$%.2f", -amount)
	case amount > 0:
		return fmt.Sprintf("+$%.2f", amount)
	}
	return "$0.00"
}
