package core

import "testing"

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name string
		goal Goal
		want float64
	}{
		{"zero target", Goal{TargetAmount: 0, CurrentAmount: 500}, 0},
		{"fresh goal", Goal{TargetAmount: 50000}, 0},
		{"partway", Goal{TargetAmount: 50000, CurrentAmount: 20000}, 40},
		{"complete", Goal{TargetAmount: 50000, CurrentAmount: 50000}, 100},
		{"overshoot", Goal{TargetAmount: 50000, CurrentAmount: 60000}, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.goal.ProgressPercentage(); got != tt.want {
				t.Errorf("ProgressPercentage() = %v, want %v", got, tt.want)
			}
		})
	}
}
