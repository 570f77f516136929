package objective

import "math"

// maxExpArg caps arguments to math.Exp so the result stays finite in
// float64. exp(700) is close to the largest representable value.
const maxExpArg = 700.0

// expClamped computes exp(x) with the argument clamped to avoid overflow.
func expClamped[F Float](x F) F {
	return F(math.Exp(math.Min(float64(x), maxExpArg)))
}

// sigmoid computes 1/(1+exp(-x)) without overflowing for large |x|.
func sigmoid[F Float](x F) F {
	v := float64(x)
	if v >= 0 {
		return F(1.0 / (1.0 + math.Exp(-v)))
	}
	e := math.Exp(v)
	return F(e / (1.0 + e))
}

// softplus computes log(1+exp(x)) without overflowing for large x.
func softplus[F Float](x F) F {
	v := float64(x)
	if v > maxExpArg {
		return x
	}
	return F(math.Log1p(math.Exp(v)))
}

// softmaxInto writes the softmax of scores into probs, shifting by the
// maximum score first so the exponentials cannot overflow.
func softmaxInto[F Float](scores, probs []F) {
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	var sum F
	for i, s := range scores {
		p := F(math.Exp(float64(s - maxScore)))
		probs[i] = p
		sum += p
	}
	for i := range scores {
		probs[i] /= sum
	}
}

// logSumExp computes log(sum(exp(scores))) with the usual max shift.
func logSumExp[F Float](scores []F) F {
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	var sum float64
	for _, s := range scores {
		sum += math.Exp(float64(s - maxScore))
	}
	return maxScore + F(math.Log(sum))
}
