package errors

import (
	"math"
	"testing"
)

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("apply_update", []float64{1, 2, 3}, 0); err != nil {
		t.Errorf("Expected nil for finite values, got %v", err)
	}

	if err := CheckNumericalStability("apply_update", []float64{1, math.NaN()}, 0); err == nil {
		t.Error("Expected error for NaN")
	}

	if err := CheckNumericalStability("apply_update", []float64{math.Inf(1)}, 0); err == nil {
		t.Error("Expected error for Inf")
	}
}

func TestCheckScalar(t *testing.T) {
	if err := CheckScalar("metric_finish", 0.5, 3); err != nil {
		t.Errorf("Expected nil for finite value, got %v", err)
	}
	if err := CheckScalar("metric_finish", math.NaN(), 3); err == nil {
		t.Error("Expected error for NaN")
	}
}

func TestSafeDivide(t *testing.T) {
	if got := SafeDivide(1.0, 2.0); got != 0.5 {
		t.Errorf("SafeDivide(1, 2) = %v, want 0.5", got)
	}
	if got := SafeDivide(1.0, 0.0); got != 0 {
		t.Errorf("SafeDivide(1, 0) = %v, want 0", got)
	}
	if got := SafeDivide(1.0, 1e-15); got != 0 {
		t.Errorf("SafeDivide(1, 1e-15) = %v, want 0", got)
	}
}

func TestClipValue(t *testing.T) {
	if got := ClipValue(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClipValue(0.5, 0, 1) = %v, want 0.5", got)
	}
	if got := ClipValue(-1, 0, 1); got != 0 {
		t.Errorf("ClipValue(-1, 0, 1) = %v, want 0", got)
	}
	if got := ClipValue(2, 0, 1); got != 1 {
		t.Errorf("ClipValue(2, 0, 1) = %v, want 1", got)
	}
}

func TestStabilizeExp(t *testing.T) {
	if got := StabilizeExp(0); got != 1 {
		t.Errorf("StabilizeExp(0) = %v, want 1", got)
	}
	if got := StabilizeExp(1000); math.IsInf(got, 1) {
		t.Error("StabilizeExp(1000) should not return Inf")
	}
	if got := StabilizeExp(-1000); got != 0 {
		t.Errorf("StabilizeExp(-1000) = %v, want 0", got)
	}
}

func TestStabilizeLog(t *testing.T) {
	if got := StabilizeLog(1); got != 0 {
		t.Errorf("StabilizeLog(1) = %v, want 0", got)
	}
	if got := StabilizeLog(0); math.IsInf(got, -1) {
		t.Error("StabilizeLog(0) should not return -Inf")
	}
}

func TestLogSumExp(t *testing.T) {
	// log(e^0 + e^0) = log(2)
	got := LogSumExp([]float64{0, 0})
	want := math.Log(2)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("LogSumExp([0,0]) = %v, want %v", got, want)
	}

	// 大きな値でもオーバーフローしない
	got = LogSumExp([]float64{1000, 1000})
	want = 1000 + math.Log(2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("LogSumExp([1000,1000]) = %v, want %v", got, want)
	}

	// 最大値からの距離だけが効く
	got = LogSumExp([]float64{0, -math.Inf(1)})
	if math.Abs(got-0) > 1e-12 {
		t.Errorf("LogSumExp([0,-Inf]) = %v, want 0", got)
	}

	if !math.IsInf(LogSumExp(nil), -1) {
		t.Error("LogSumExp(nil) should be -Inf")
	}
}
