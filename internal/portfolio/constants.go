package portfolio

// Bucket identifies one of the three ROI risk bands
type Bucket string

const (
	BucketLoss       Bucket = "loss"
	BucketProfitable Bucket = "profitable"
	BucketJackpot    Bucket = "jackpot"
)

// ROI band boundaries. Every item lands in exactly one bucket:
// roi < ProfitableROI -> loss, ProfitableROI <= roi < JackpotROI ->
// profitable, roi >= JackpotROI -> jackpot.
const (
	ProfitableROI = 1.0
	JackpotROI    = 5.0
)

// TopItemsShown truncates each scenario's item list for presentation
const TopItemsShown = 5
