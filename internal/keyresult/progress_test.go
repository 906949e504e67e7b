package keyresult_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/okrun-lambda/internal/keyresult"
)

func TestProgress(t *testing.T) {
	cases := []struct {
		name            string
		current, target float64
		want            float64
	}{
		{"Half", 50, 100, 50},
		{"Done", 10, 10, 100},
		{"OverTarget", 150, 100, 150},
		{"Fraction", 1, 3, 100.0 / 3},
		{"ZeroTarget", 42, 0, 0},
		{"ZeroBoth", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, keyresult.Progress(tc.current, tc.target), 1e-9)
		})
	}
}

func TestResolveProgress(t *testing.T) {
	t.Run("ExplicitWins", func(t *testing.T) {
		explicit := 12.5
		assert.Equal(t, 12.5, keyresult.ResolveProgress(&explicit, 90, 100))
	})

	t.Run("ComputedWhenOmitted", func(t *testing.T) {
		assert.Equal(t, 90.0, keyresult.ResolveProgress(nil, 90, 100))
	})
}

func TestNewAndApply(t *testing.T) {
	target := 200.0
	current := 50.0
	weight := 30

	kr := keyresult.New(keyresult.KeyResultInput{
		Title:        "Close deals",
		TargetValue:  &target,
		CurrentValue: &current,
		Unit:         "deals",
		Weight:       &weight,
	}, 7, nil)

	assert.Equal(t, uint(7), kr.ObjectiveID)
	assert.Equal(t, keyresult.DefaultStatus, kr.Status)
	assert.Equal(t, 25.0, kr.ProgressPercent)
	assert.Equal(t, 30, kr.Weight)

	t.Run("ApplyKeepsOmittedFields", func(t *testing.T) {
		newTarget := 100.0
		paused := keyresult.StatusPaused
		keyresult.Apply(&kr, keyresult.KeyResultInput{
			Title:       "Close deals",
			TargetValue: &newTarget,
			Unit:        "deals",
			Status:      &paused,
		})

		assert.Equal(t, 50.0, kr.CurrentValue)
		assert.Equal(t, 30, kr.Weight)
		assert.Equal(t, keyresult.StatusPaused, kr.Status)
		assert.Equal(t, 50.0, kr.ProgressPercent)
	})
}
