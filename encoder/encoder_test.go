// SPDX-License-Identifier: MIT

package encoder_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubox/encoder"
	"github.com/katalvlaran/qubox/logger"
	"github.com/katalvlaran/qubox/matrix"
	"github.com/katalvlaran/qubox/model"
)

func TestResolveDefaults(t *testing.T) {
	o, err := encoder.Resolve()
	require.NoError(t, err)
	require.Equal(t, encoder.DefaultOptions(), o)
	require.Equal(t, 1.0, o.Alpha)
	require.Equal(t, model.QUBO, o.Representation)
	require.Equal(t, matrix.Upper, o.Layout)
	require.Equal(t, 1, o.Workers)

	o, err = encoder.Resolve(
		encoder.WithAlpha(7),
		encoder.WithRepresentation(model.Ising),
		encoder.WithLayout(matrix.Symmetric),
		encoder.WithWorkers(4),
	)
	require.NoError(t, err)
	require.Equal(t, encoder.Options{Alpha: 7, Representation: model.Ising, Layout: matrix.Symmetric, Workers: 4}, o)
}

func TestOptionPanicsAndValidate(t *testing.T) {
	require.Panics(t, func() { encoder.WithAlpha(0) })
	require.Panics(t, func() { encoder.WithAlpha(math.Inf(1)) })
	require.Panics(t, func() { encoder.WithWorkers(0) })

	_, err := encoder.Resolve(encoder.WithRepresentation(model.Representation(5)))
	require.ErrorIs(t, err, model.ErrInvalidRepresentation)
	_, err = encoder.Resolve(encoder.WithLayout(matrix.Layout(5)))
	require.ErrorIs(t, err, matrix.ErrInvalidLayout)

	bad := encoder.DefaultOptions()
	bad.Alpha = -1
	require.ErrorIs(t, bad.Validate(), encoder.ErrBadAlpha)
	bad = encoder.DefaultOptions()
	bad.Workers = 0
	require.ErrorIs(t, bad.Validate(), encoder.ErrBadWorkers)
}

func TestSquareOrder(t *testing.T) {
	n, err := encoder.SquareOrder("weight", [][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = encoder.SquareOrder("weight", nil)
	require.ErrorIs(t, err, encoder.ErrEmptyInstance)
	require.Contains(t, err.Error(), "weight")

	_, err = encoder.SquareOrder("distance", [][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, encoder.ErrNonSquare)
	_, err = encoder.SquareOrder("distance", [][]float64{{0, 1, 2}, {1, 0, 3}})
	require.ErrorIs(t, err, encoder.ErrNonSquare)
	_, err = encoder.SquareOrder("distance", [][]float64{{0, math.NaN()}, {1, 0}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestInstanceMatrix(t *testing.T) {
	_, err := encoder.InstanceMatrix("distance", nil)
	require.ErrorIs(t, err, encoder.ErrEmptyInstance)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = encoder.InstanceMatrix("distance", rect)
	require.ErrorIs(t, err, encoder.ErrNonSquare)

	sq, err := matrix.NewDenseFrom([][]float64{{0, 2}, {2, 0}})
	require.NoError(t, err)
	d, err := encoder.InstanceMatrix("distance", sq)
	require.NoError(t, err)
	require.NotSame(t, sq, d)

	other, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.ErrorIs(t, encoder.SameOrder(d, other), encoder.ErrShapeMismatch)
	require.NoError(t, encoder.SameOrder(d, sq))
}

func TestScatterRowsVisitsEveryBlock(t *testing.T) {
	for _, workers := range []int{1, 3, 16} {
		var hits [10]int32
		err := encoder.ScatterRows(context.Background(), len(hits), workers, func(_ context.Context, b int) error {
			atomic.AddInt32(&hits[b], 1)
			return nil
		})
		require.NoError(t, err)
		for b, h := range hits {
			require.Equal(t, int32(1), h, "workers=%d block=%d", workers, b)
		}
	}
}

func TestScatterRowsPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	for _, workers := range []int{1, 4} {
		err := encoder.ScatterRows(context.Background(), 8, workers, func(_ context.Context, b int) error {
			if b == 5 {
				return boom
			}
			return nil
		})
		require.ErrorIs(t, err, boom)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := encoder.ScatterRows(ctx, 3, 1, func(context.Context, int) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestOneHotGridPenalty(t *testing.T) {
	const n = 3
	m, err := model.New(model.QUBO, n*n)
	require.NoError(t, err)
	require.NoError(t, encoder.OneHotGrid(m, n, 2))

	feasible := []int{0, 1, 0, 0, 0, 1, 1, 0, 0}
	e, err := m.Energy(feasible, model.Penalty)
	require.NoError(t, err)
	require.Zero(t, e)

	off, err := m.Offset(model.Penalty)
	require.NoError(t, err)
	require.Equal(t, 2.0*2*n, off)

	// Row 0 holds two ones and row 1 none.
	infeasible := []int{1, 1, 0, 0, 0, 0, 0, 0, 1}
	e, err = m.Energy(infeasible, model.Penalty)
	require.NoError(t, err)
	require.Positive(t, e)
}

func TestFinalizeConvertsAndLogs(t *testing.T) {
	prev := logger.Logger()
	defer logger.Set(prev)
	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf).Level(zerolog.DebugLevel))

	m, err := model.New(model.QUBO, 4)
	require.NoError(t, err)
	require.NoError(t, encoder.OneHotGrid(m, 2, 1))
	require.NoError(t, m.AddCost(0, 3, 2))

	o, err := encoder.Resolve(encoder.WithRepresentation(model.Ising), encoder.WithLayout(matrix.Symmetric))
	require.NoError(t, err)
	out, err := encoder.Finalize(context.Background(), "test", 2, m, o, time.Now())
	require.NoError(t, err)
	require.Equal(t, model.Ising, out.Representation())
	require.Equal(t, matrix.Symmetric, out.Layout())
	require.True(t, out.Merged())

	e, err := out.Energy([]int{1, -1, -1, 1}, model.All)
	require.NoError(t, err)
	require.Equal(t, int64(2), e)

	require.Contains(t, buf.String(), `"encoder":"test"`)
	require.Contains(t, buf.String(), `"representation":"ISING"`)
	require.Contains(t, buf.String(), `"message":"model built"`)
}

func TestDecodeGrid(t *testing.T) {
	perm, err := encoder.DecodeGrid([]int{0, 1, 0, 0, 0, 1, 1, 0, 0}, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0}, perm)
	require.Equal(t, []int{0, 1, 0, 0, 0, 1, 1, 0, 0}, encoder.EncodeGrid(perm))

	perm, err = encoder.DecodeGrid([]int{-1, 1, 1, -1}, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, perm)

	for name, x := range map[string][]int{
		"short":      {1, 0, 0},
		"two in row": {1, 1, 0, 0},
		"empty row":  {1, 0, 0, 0},
		"column":     {1, 0, 1, 0},
		"domain":     {2, 0, 0, 1},
	} {
		_, err = encoder.DecodeGrid(x, 2)
		require.ErrorIs(t, err, encoder.ErrInfeasible, name)
	}

	require.NoError(t, encoder.ValidatePermutation([]int{2, 0, 1}, 3))
	require.ErrorIs(t, encoder.ValidatePermutation([]int{2, 2, 1}, 3), encoder.ErrInfeasible)
	require.ErrorIs(t, encoder.ValidatePermutation([]int{0, 3, 1}, 3), encoder.ErrInfeasible)
	require.ErrorIs(t, encoder.ValidatePermutation([]int{0}, 3), encoder.ErrInfeasible)
}
