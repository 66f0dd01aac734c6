package strategy

// Ruleset holds house-rule variants. The zero value allows doubling
// everywhere, including after a split.
type Ruleset struct {
	NoDouble           bool
	NoDoubleAfterSplit bool
}

// Apply maps a chart verdict to an action under the rules
func (r Ruleset) Apply(c ChartAction) (Action, bool) {
	switch c {
	case DoubleElseHit:
		if r.NoDouble {
			return Hit, true
		}
		return Double, true
	case DoubleElseStand:
		if r.NoDouble {
			return Stand, true
		}
		return Double, true
	case ChartHit:
		return Hit, true
	case ChartStand:
		return Stand, true
	case ChartSplit:
		return Split, true
	case SplitIfDAS:
		// Every pair marked this way hits on the hard chart
		if r.NoDouble || r.NoDoubleAfterSplit {
			return Hit, true
		}
		return Split, true
	default:
		return 0, false
	}
}
