package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devtracer/matrixcalc/internal/matrix"
)

// ShapeRequest carries the raw dimension text typed by the user.
type ShapeRequest struct {
	RowsA, ColsA string
	RowsB, ColsB string
}

// Shape is a resolved pair of operand dimensions. Clamped is set when a
// dimension was reduced to MaxDimension.
type Shape struct {
	A, B    matrix.Dims
	Clamped bool
}

// Calculation is one completed product. ID only exists to correlate log lines.
type Calculation struct {
	ID      string
	A, B    matrix.Matrix
	Product matrix.Matrix
}

// Calculator is the boundary between the presentation layer and the matrix core.
type Calculator struct {
	Logger           *zap.Logger
	DefaultDimension int
	MaxDimension     int // 0 disables the upper clamp
}

// NewCalculator returns a Calculator with the given defaults. A nil logger is
// replaced with a no-op logger.
func NewCalculator(logger *zap.Logger, defaultDim, maxDim int) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultDim < 1 {
		defaultDim = matrix.DefaultDimension
	}
	return &Calculator{Logger: logger, DefaultDimension: defaultDim, MaxDimension: maxDim}
}

// Resolve turns the four raw dimensions into a Shape. Compatibility is
// checked on the dimensions as typed; MaxDimension is applied only to a
// compatible pair, so the clamp never hides a mismatch. On mismatch the
// unclamped shape is returned with an error matching
// matrix.ErrDimensionMismatch.
func (c *Calculator) Resolve(req ShapeRequest) (Shape, error) {
	s := Shape{
		A: matrix.ResolveDims(req.RowsA, req.ColsA, c.DefaultDimension),
		B: matrix.ResolveDims(req.RowsB, req.ColsB, c.DefaultDimension),
	}
	if !matrix.CanMultiply(s.A, s.B) {
		c.Logger.Warn("shape rejected",
			zap.Stringer("a", s.A),
			zap.Stringer("b", s.B))
		return s, fmt.Errorf("resolve %s by %s: %w", s.A, s.B, matrix.ErrDimensionMismatch)
	}
	a, b := c.clamp(s.A), c.clamp(s.B)
	if a != s.A || b != s.B {
		c.Logger.Info("shape clamped",
			zap.Stringer("a", s.A),
			zap.Stringer("b", s.B),
			zap.Int("max", c.MaxDimension))
		s = Shape{A: a, B: b, Clamped: true}
	}
	c.Logger.Debug("shape resolved", zap.Stringer("a", s.A), zap.Stringer("b", s.B))
	return s, nil
}

// Calculate collects both cell grids (unparsable cells become 0) and multiplies them.
func (c *Calculator) Calculate(ctx context.Context, aCells, bCells [][]string) (Calculation, error) {
	a, err := matrix.CollectCells(aCells)
	if err != nil {
		return Calculation{}, fmt.Errorf("matrix A: %w", err)
	}
	b, err := matrix.CollectCells(bCells)
	if err != nil {
		return Calculation{}, fmt.Errorf("matrix B: %w", err)
	}
	return c.CalculateMatrices(ctx, a, b)
}

// CalculateMatrices multiplies two already-parsed matrices.
func (c *Calculator) CalculateMatrices(ctx context.Context, a, b matrix.Matrix) (Calculation, error) {
	if err := ctx.Err(); err != nil {
		return Calculation{}, err
	}
	id := uuid.NewString()
	product, err := matrix.Multiply(a, b)
	if err != nil {
		c.Logger.Warn("calculation failed",
			zap.String("id", id),
			zap.Stringer("a", a.Dims()),
			zap.Stringer("b", b.Dims()),
			zap.Error(err))
		return Calculation{}, err
	}
	c.Logger.Info("calculation complete",
		zap.String("id", id),
		zap.Stringer("a", a.Dims()),
		zap.Stringer("b", b.Dims()),
		zap.Stringer("product", product.Dims()))
	return Calculation{ID: id, A: a, B: b, Product: product}, nil
}

func (c *Calculator) clamp(d matrix.Dims) matrix.Dims {
	if c.MaxDimension < 1 {
		return d
	}
	d.Rows = min(d.Rows, c.MaxDimension)
	d.Cols = min(d.Cols, c.MaxDimension)
	return d
}
