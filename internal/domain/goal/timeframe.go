package goal

// Timeframe represents the planning horizon of a Goal.
type Timeframe string

const (
	TimeframeLong   Timeframe = "long"
	TimeframeMedium Timeframe = "medium"
	TimeframeShort  Timeframe = "short"
	TimeframeTask   Timeframe = "task"
)

// IsValid returns true if the timeframe is one of the defined constants.
func (t Timeframe) IsValid() bool {
	switch t {
	case TimeframeLong, TimeframeMedium, TimeframeShort, TimeframeTask:
		return true
	default:
		return false
	}
}

// Rank orders timeframes from most to least immediately binding:
// task (0) < short (1) < medium (2) < long (3). Constraints derived from
// shorter-horizon goals are evaluated before longer-horizon ones.
func (t Timeframe) Rank() int {
	switch t {
	case TimeframeTask:
		return 0
	case TimeframeShort:
		return 1
	case TimeframeMedium:
		return 2
	case TimeframeLong:
		return 3
	default:
		return 4
	}
}

// String implements fmt.Stringer.
func (t Timeframe) String() string {
	return string(t)
}
