package bandit_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10} {
		arms := make(bandit.Arms, n)
		for i := range arms {
			arms[i] = float64(i) / float64(n)
		}

		st := gt.R1(bandit.New(arms)).NoError(t)
		gt.Equal(t, n, len(st.Alpha))
		gt.Equal(t, n, len(st.Beta))
		gt.Equal(t, 0, st.Regret)
		for i := range n {
			gt.Equal(t, 1.0, st.Alpha[i])
			gt.Equal(t, 1.0, st.Beta[i])
		}
	}
}

func TestNewRejectsBadArms(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := bandit.New(bandit.Arms{})
		gt.True(t, errors.Is(err, bandit.ErrEmptyArmSet))
	})

	t.Run("above one", func(t *testing.T) {
		_, err := bandit.New(bandit.Arms{0.5, 1.5})
		gt.True(t, errors.Is(err, bandit.ErrInvalidProbability))
	})

	t.Run("negative", func(t *testing.T) {
		_, err := bandit.New(bandit.Arms{-0.1})
		gt.True(t, errors.Is(err, bandit.ErrInvalidProbability))
	})

	t.Run("NaN", func(t *testing.T) {
		_, err := bandit.New(bandit.Arms{math.NaN()})
		gt.True(t, errors.Is(err, bandit.ErrInvalidProbability))
	})
}

func TestNewWithArms(t *testing.T) {
	st := gt.R1(bandit.NewWithArms(4)).NoError(t)
	gt.Equal(t, 4, st.Len())

	_, err := bandit.NewWithArms(0)
	gt.True(t, errors.Is(err, bandit.ErrEmptyArmSet))
}

func TestStateValidate(t *testing.T) {
	st := gt.R1(bandit.NewWithArms(2)).NoError(t)
	gt.NoError(t, st.Validate())

	broken := st.Clone()
	broken.Beta[1] = 0
	gt.True(t, errors.Is(broken.Validate(), bandit.ErrDistributionParameter))

	broken = st.Clone()
	broken.Alpha[0] = math.Inf(1)
	gt.True(t, errors.Is(broken.Validate(), bandit.ErrDistributionParameter))

	broken = st.Clone()
	broken.Beta = broken.Beta[:1]
	gt.True(t, errors.Is(broken.Validate(), bandit.ErrArmCountMismatch))

	// Clone must not share backing arrays.
	gt.Equal(t, 1.0, st.Beta[1])
}

func TestMeans(t *testing.T) {
	st := &bandit.State{Alpha: []float64{1, 3}, Beta: []float64{3, 1}}
	gt.Equal(t, []float64{0.25, 0.75}, st.Means())
}

func TestArmsBest(t *testing.T) {
	gt.Equal(t, 2, bandit.Arms{0.2, 0.3, 0.8}.Best())
	gt.Equal(t, 0, bandit.Arms{0.5, 0.5}.Best())
}
