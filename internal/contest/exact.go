package contest

// Probabilities are the exact chances of each trial outcome.
type Probabilities struct {
	AWin float64
	BWin float64
	Tie  float64
}

// Exact computes the closed-form win, tie and loss probabilities for spec by
// convolving each side's face distribution. Samples is validated but does not
// affect the result.
func Exact(spec Spec) (Probabilities, error) {
	if err := spec.Validate(); err != nil {
		return Probabilities{}, err
	}
	distA, err := spec.A.Distribution(spec.RollsA)
	if err != nil {
		return Probabilities{}, err
	}
	distB, err := spec.B.Distribution(spec.RollsB)
	if err != nil {
		return Probabilities{}, err
	}

	// below[t] is the probability that B totals strictly less than t.
	below := make([]float64, len(distA)+1)
	acc := 0.0
	for t := range below {
		below[t] = acc
		if t < len(distB) {
			acc += distB[t]
		}
	}

	var p Probabilities
	for total, pa := range distA {
		if pa == 0 {
			continue
		}
		p.AWin += pa * below[total]
		if total < len(distB) {
			p.Tie += pa * distB[total]
		}
	}
	p.BWin = 1 - p.AWin - p.Tie
	return p, nil
}
