package objective

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMSELoss(t *testing.T) {
	obj := NewMSELoss[float64]()

	t.Run("Traits", func(t *testing.T) {
		traits := obj.Traits()
		assert.Equal(t, 1.0, traits.UpdateScale)
		assert.False(t, traits.NeedsHessian)
		assert.True(t, traits.NoTargets)
	})

	t.Run("Gradient and Hessian", func(t *testing.T) {
		testCases := []struct {
			score   float64
			target  float64
			expGrad float64
		}{
			{score: 2.0, target: 1.0, expGrad: 1.0},
			{score: 1.0, target: 2.0, expGrad: -1.0},
			{score: 3.5, target: 3.5, expGrad: 0.0},
			{score: -1.0, target: 1.0, expGrad: -2.0},
		}

		for _, tc := range testCases {
			grad, hess := obj.GradHess(tc.score, tc.target)
			assert.InDelta(t, tc.expGrad, grad, 1e-6,
				"Gradient mismatch for score=%.2f, target=%.2f", tc.score, tc.target)
			assert.InDelta(t, 1.0, hess, 1e-6)
		}
	})

	t.Run("Metric", func(t *testing.T) {
		assert.InDelta(t, 4.0, obj.Metric(3.0, 1.0), 1e-6) // (3-1)^2
		assert.InDelta(t, 0.0, obj.Metric(1.0, 1.0), 1e-6)
		assert.InDelta(t, 6.25, obj.FinishMetric(6.25), 1e-6)
	})
}

func TestLogLoss(t *testing.T) {
	obj := NewLogLoss[float64]()

	t.Run("Traits", func(t *testing.T) {
		traits := obj.Traits()
		assert.True(t, traits.NeedsHessian)
		assert.False(t, traits.NoTargets)
	})

	t.Run("Gradient and Hessian", func(t *testing.T) {
		testCases := []struct {
			score   float64
			target  float64
			expGrad float64
			expHess float64
		}{
			{score: 0.0, target: 1.0, expGrad: -0.5, expHess: 0.25},
			{score: 0.0, target: 0.0, expGrad: 0.5, expHess: 0.25},
			{score: 2.0, target: 1.0, expGrad: -0.119203, expHess: 0.104994},
			{score: -1.0, target: 0.0, expGrad: 0.268941, expHess: 0.196612},
		}

		for _, tc := range testCases {
			grad, hess := obj.GradHess(tc.score, tc.target)
			assert.InDelta(t, tc.expGrad, grad, 1e-6,
				"Gradient mismatch for score=%.2f, target=%.2f", tc.score, tc.target)
			assert.InDelta(t, tc.expHess, hess, 1e-6,
				"Hessian mismatch for score=%.2f, target=%.2f", tc.score, tc.target)
		}
	})

	t.Run("Metric", func(t *testing.T) {
		// log(1+exp(s)) - t*s
		assert.InDelta(t, math.Log(2), obj.Metric(0.0, 1.0), 1e-6)
		assert.InDelta(t, math.Log(2), obj.Metric(0.0, 0.0), 1e-6)
		assert.InDelta(t, 0.126928, obj.Metric(2.0, 1.0), 1e-6)
		assert.InDelta(t, 0.313262, obj.Metric(-1.0, 0.0), 1e-6)
	})

	t.Run("Extreme scores stay finite", func(t *testing.T) {
		grad, hess := obj.GradHess(800.0, 1.0)
		assert.InDelta(t, 0.0, grad, 1e-6)
		assert.False(t, math.IsNaN(hess))
		assert.InDelta(t, 0.0, obj.Metric(800.0, 1.0), 1e-6)

		grad, _ = obj.GradHess(-800.0, 0.0)
		assert.InDelta(t, 0.0, grad, 1e-6)
		assert.InDelta(t, 0.0, obj.Metric(-800.0, 0.0), 1e-6)
	})
}

func TestPseudoHuberLoss(t *testing.T) {
	t.Run("Unit delta", func(t *testing.T) {
		obj := NewPseudoHuberLoss[float64](1.0)
		assert.True(t, obj.Traits().NeedsHessian)

		grad, hess := obj.GradHess(1.0, 1.0)
		assert.InDelta(t, 0.0, grad, 1e-6)
		assert.InDelta(t, 1.0, hess, 1e-6)

		// residual 1: root = sqrt(2)
		grad, hess = obj.GradHess(2.0, 1.0)
		assert.InDelta(t, 1.0/math.Sqrt2, grad, 1e-6)
		assert.InDelta(t, 1.0/(2.0*math.Sqrt2), hess, 1e-6)
		assert.InDelta(t, math.Sqrt2-1.0, obj.Metric(2.0, 1.0), 1e-6)
	})

	t.Run("Scaled delta", func(t *testing.T) {
		obj := NewPseudoHuberLoss[float64](2.0)

		// residual -3: root = sqrt(1 + 2.25)
		root := math.Sqrt(3.25)
		grad, hess := obj.GradHess(0.0, 3.0)
		assert.InDelta(t, -3.0/root, grad, 1e-6)
		assert.InDelta(t, 1.0/(root*root*root), hess, 1e-6)
		assert.InDelta(t, 4.0*(root-1.0), obj.Metric(0.0, 3.0), 1e-6)
	})

	t.Run("Linear tail", func(t *testing.T) {
		obj := NewPseudoHuberLoss[float64](1.0)

		// For large residuals the gradient saturates and the metric grows
		// linearly, unlike plain squared error.
		grad, _ := obj.GradHess(1000.0, 0.0)
		assert.InDelta(t, 1.0, grad, 1e-3)
		assert.InDelta(t, 999.0, obj.Metric(1000.0, 0.0), 0.1)
	})
}

func TestGammaDevianceLoss(t *testing.T) {
	obj := NewGammaDevianceLoss[float64]()

	t.Run("Gradient and Hessian", func(t *testing.T) {
		testCases := []struct {
			score   float64
			target  float64
			expGrad float64
			expHess float64
		}{
			{score: 0.0, target: 1.0, expGrad: 0.0, expHess: 1.0},
			{score: math.Log(2), target: 1.0, expGrad: 0.5, expHess: 0.5},
			{score: 0.0, target: 3.0, expGrad: -2.0, expHess: 3.0},
		}

		for _, tc := range testCases {
			grad, hess := obj.GradHess(tc.score, tc.target)
			assert.InDelta(t, tc.expGrad, grad, 1e-6,
				"Gradient mismatch for score=%.4f, target=%.2f", tc.score, tc.target)
			assert.InDelta(t, tc.expHess, hess, 1e-6,
				"Hessian mismatch for score=%.4f, target=%.2f", tc.score, tc.target)
		}
	})

	t.Run("Metric", func(t *testing.T) {
		// Perfect prediction has zero deviance.
		assert.InDelta(t, 0.0, obj.Metric(0.0, 1.0), 1e-6)

		// frac = 0.5: 0.5 - 1 - log(0.5)
		assert.InDelta(t, math.Log(2)-0.5, obj.Metric(math.Log(2), 1.0), 1e-6)

		// frac = 3: 3 - 1 - log(3)
		assert.InDelta(t, 2.0-math.Log(3), obj.Metric(0.0, 3.0), 1e-6)
	})

	t.Run("FinishMetric doubles the sum", func(t *testing.T) {
		assert.InDelta(t, 3.0, obj.FinishMetric(1.5), 1e-6)
	})
}

func TestPoissonDevianceLoss(t *testing.T) {
	obj := NewPoissonDevianceLoss[float64]()

	t.Run("Gradient and Hessian", func(t *testing.T) {
		testCases := []struct {
			score   float64
			target  float64
			expGrad float64
			expHess float64
		}{
			{score: 0.0, target: 1.0, expGrad: 0.0, expHess: 1.0},
			{score: math.Log(2), target: 1.0, expGrad: 1.0, expHess: 2.0},
			{score: 0.0, target: 0.0, expGrad: 1.0, expHess: 1.0},
			{score: 0.0, target: 4.0, expGrad: -3.0, expHess: 1.0},
		}

		for _, tc := range testCases {
			grad, hess := obj.GradHess(tc.score, tc.target)
			assert.InDelta(t, tc.expGrad, grad, 1e-6,
				"Gradient mismatch for score=%.4f, target=%.2f", tc.score, tc.target)
			assert.InDelta(t, tc.expHess, hess, 1e-6,
				"Hessian mismatch for score=%.4f, target=%.2f", tc.score, tc.target)
		}
	})

	t.Run("Metric", func(t *testing.T) {
		assert.InDelta(t, 0.0, obj.Metric(0.0, 1.0), 1e-6)

		// pred 2, target 1: (2-1) + log(1/2)
		assert.InDelta(t, 1.0-math.Log(2), obj.Metric(math.Log(2), 1.0), 1e-6)

		// Zero targets drop the log term entirely.
		assert.InDelta(t, 1.0, obj.Metric(0.0, 0.0), 1e-6)
	})

	t.Run("FinishMetric doubles the sum", func(t *testing.T) {
		assert.InDelta(t, 4.0, obj.FinishMetric(2.0), 1e-6)
	})

	t.Run("Large scores are clamped", func(t *testing.T) {
		grad, hess := obj.GradHess(1e6, 1.0)
		assert.False(t, math.IsNaN(grad))
		assert.False(t, math.IsInf(hess, -1))
	})
}

func TestQuantileLoss(t *testing.T) {
	obj := NewQuantileLoss[float64](0.9)

	t.Run("Traits", func(t *testing.T) {
		assert.False(t, obj.Traits().NeedsHessian)
	})

	t.Run("Gradient", func(t *testing.T) {
		testCases := []struct {
			score   float64
			target  float64
			expGrad float64
		}{
			{score: 2.0, target: 1.0, expGrad: 0.1},
			{score: 1.0, target: 2.0, expGrad: -0.9},
			{score: 1.0, target: 1.0, expGrad: 0.0},
		}

		for _, tc := range testCases {
			grad, hess := obj.GradHess(tc.score, tc.target)
			assert.InDelta(t, tc.expGrad, grad, 1e-6,
				"Gradient mismatch for score=%.2f, target=%.2f", tc.score, tc.target)
			assert.True(t, hess > 0)
		}
	})

	t.Run("Pinball metric", func(t *testing.T) {
		assert.InDelta(t, 0.1, obj.Metric(2.0, 1.0), 1e-6)
		assert.InDelta(t, 0.9, obj.Metric(1.0, 2.0), 1e-6)
		assert.InDelta(t, 0.0, obj.Metric(1.0, 1.0), 1e-6)
	})
}

func TestLossFloat32Agreement(t *testing.T) {
	// The float32 instantiation must track the float64 one to single
	// precision accuracy.
	obj64 := NewLogLoss[float64]()
	obj32 := NewLogLoss[float32]()

	scores := []float64{-3.0, -0.5, 0.0, 0.7, 2.5}
	for _, s := range scores {
		g64, h64 := obj64.GradHess(s, 1.0)
		g32, h32 := obj32.GradHess(float32(s), 1.0)

		assert.InDelta(t, g64, float64(g32), 1e-4, "gradient at score %.2f", s)
		assert.InDelta(t, h64, float64(h32), 1e-4, "hessian at score %.2f", s)
	}
}
