package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/devtracer/matrixcalc/internal/config"
	"github.com/devtracer/matrixcalc/internal/matrix"
	"github.com/devtracer/matrixcalc/internal/service"
)

const appTitle = "Matrices Cross Product Calculator"

const mismatchMessage = "Matrix A columns must match Matrix B rows for multiplication."

// Dimension inputs, in display and focus order.
const (
	dimRowsA = iota
	dimColsA
	dimRowsB
	dimColsB
	dimCount
)

var dimLabels = [dimCount]string{
	"Matrix A Rows:", "Matrix A Columns:", "Matrix B Rows:", "Matrix B Columns:",
}

type area int

const (
	areaForm area = iota
	areaA
	areaB
)

// fieldRef addresses one focusable input.
type fieldRef struct {
	area     area
	index    int // dimension input index, areaForm only
	row, col int
}

type modalState struct {
	title   string
	message string
}

// App is the Bubble Tea model. It owns every input's lifetime and calls into
// the calculator for all computation.
type App struct {
	ctx       context.Context
	calc      *service.Calculator
	keys      *KeyRegistry
	logger    *zap.Logger
	cellWidth int

	dims    [dimCount]textinput.Model
	shape   service.Shape
	gridA   cellGrid
	gridB   cellGrid
	product matrix.Matrix
	result  table.Model

	focus     int
	modal     *modalState
	status    string
	statusErr bool
	width     int
	height    int
}

func New(ctx context.Context, cfg config.Config, calc *service.Calculator, keys *KeyRegistry, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if keys == nil {
		keys = NewKeyRegistry()
	}
	if calc == nil {
		calc = service.NewCalculator(logger, cfg.Matrix.DefaultDimension, cfg.Matrix.MaxDimension)
	}
	cellWidth := cfg.UI.CellWidth
	if cellWidth <= 0 {
		cellWidth = 6
	}
	a := &App{
		ctx:       ctx,
		calc:      calc,
		keys:      keys,
		logger:    logger,
		cellWidth: cellWidth,
		status:    "Enter dimensions and press enter to generate the matrices.",
	}
	for i := range a.dims {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fmt.Sprint(calc.DefaultDimension)
		ti.CharLimit = 4
		ti.Width = 4
		a.dims[i] = ti
	}
	a.resetShape()
	a.dims[dimRowsA].Focus()
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := a.scope()
	b := a.keys.Lookup(msg.String(), scope)
	if a.modal != nil {
		if b != nil && b.Action == actionDismiss {
			a.modal = nil
		}
		return a, nil
	}
	if b == nil {
		return a, a.updateFocused(msg)
	}

	switch b.Action {
	case actionQuit:
		return a, tea.Quit
	case actionGenerate:
		return a, a.generate()
	case actionCalculate:
		a.calculate()
		return a, nil
	case actionClear:
		return a, a.clear()
	case actionNextField:
		return a, a.setFocus(a.focus + 1)
	case actionPrevField:
		return a, a.setFocus(a.focus - 1)
	case actionMoveUp:
		return a, a.moveInGrid(-1, 0)
	case actionMoveDown:
		return a, a.moveInGrid(1, 0)
	case actionMoveLeft:
		return a, a.moveInGrid(0, -1)
	case actionMoveRight:
		return a, a.moveInGrid(0, 1)
	}
	return a, nil
}

func (a *App) scope() string {
	if a.modal != nil {
		return scopeModal
	}
	if a.focusedField().area == areaForm {
		return scopeForm
	}
	return scopeGrid
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

// generate resolves the typed dimensions and rebuilds both entry grids. On a
// shape mismatch nothing on screen changes besides the error notification.
func (a *App) generate() tea.Cmd {
	shape, err := a.calc.Resolve(service.ShapeRequest{
		RowsA: a.dims[dimRowsA].Value(),
		ColsA: a.dims[dimColsA].Value(),
		RowsB: a.dims[dimRowsB].Value(),
		ColsB: a.dims[dimColsB].Value(),
	})
	if err != nil {
		a.reportError(err)
		return nil
	}

	a.discardMatrices()
	a.shape = shape
	a.gridA = newCellGrid("A", colorMatrixA, shape.A, a.cellWidth)
	a.gridB = newCellGrid("B", colorMatrixB, shape.B, a.cellWidth)
	msg := fmt.Sprintf("Generated A %s and B %s.", shape.A, shape.B)
	if shape.Clamped {
		msg += fmt.Sprintf(" Dimensions above %d were reduced to %d.", a.calc.MaxDimension, a.calc.MaxDimension)
	}
	a.setStatus(msg+" Fill the cells, then press enter to calculate.", false)
	a.logger.Debug("matrices generated", zap.Stringer("a", shape.A), zap.Stringer("b", shape.B))
	return a.setFocus(dimCount)
}

// calculate multiplies the current grids. Unparsable cells count as 0.
func (a *App) calculate() {
	if a.gridA.empty() || a.gridB.empty() {
		a.setStatus("Generate the matrices first.", true)
		return
	}
	res, err := a.calc.Calculate(a.ctx, a.gridA.values(), a.gridB.values())
	if err != nil {
		a.reportError(err)
		return
	}
	a.product = res.Product
	a.result = newResultTable(res.Product, a.cellWidth)
	a.setStatus(fmt.Sprintf("A %s × B %s = %s", res.A.Dims(), res.B.Dims(), res.Product.Dims()), false)
}

// clear tears down every generated field, empties the dimension inputs and
// restores the default shape.
func (a *App) clear() tea.Cmd {
	a.discardMatrices()
	for i := range a.dims {
		a.dims[i].SetValue("")
	}
	a.resetShape()
	a.setStatus("Cleared.", false)
	a.logger.Debug("matrices cleared")
	return a.setFocus(0)
}

func (a *App) discardMatrices() {
	a.gridA = cellGrid{}
	a.gridB = cellGrid{}
	a.product = nil
	a.result = table.Model{}
}

func (a *App) resetShape() {
	d := matrix.Dims{Rows: a.calc.DefaultDimension, Cols: a.calc.DefaultDimension}
	a.shape = service.Shape{A: d, B: d}
}

func (a *App) reportError(err error) {
	if errors.Is(err, matrix.ErrDimensionMismatch) {
		a.modal = &modalState{title: "Dimension Error", message: mismatchMessage}
		a.setStatus(mismatchMessage, true)
		return
	}
	a.logger.Error("unexpected calculation error", zap.Error(err))
	a.modal = &modalState{title: "Error", message: "An error occurred: " + err.Error()}
	a.setStatus(err.Error(), true)
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

// ---------------------------------------------------------------------------
// Focus
// ---------------------------------------------------------------------------

// fields lists every focusable input in tab order.
func (a *App) fields() []fieldRef {
	out := make([]fieldRef, 0, dimCount)
	for i := 0; i < dimCount; i++ {
		out = append(out, fieldRef{area: areaForm, index: i})
	}
	for _, g := range []struct {
		area area
		grid cellGrid
	}{{areaA, a.gridA}, {areaB, a.gridB}} {
		for i, row := range g.grid.cells {
			for j := range row {
				out = append(out, fieldRef{area: g.area, row: i, col: j})
			}
		}
	}
	return out
}

func (a *App) focusedField() fieldRef {
	fields := a.fields()
	if a.focus < 0 || a.focus >= len(fields) {
		return fields[0]
	}
	return fields[a.focus]
}

func (a *App) input(ref fieldRef) *textinput.Model {
	switch ref.area {
	case areaA:
		return &a.gridA.cells[ref.row][ref.col]
	case areaB:
		return &a.gridB.cells[ref.row][ref.col]
	default:
		return &a.dims[ref.index]
	}
}

// setFocus moves focus to index i, wrapping around the tab order.
func (a *App) setFocus(i int) tea.Cmd {
	fields := a.fields()
	n := len(fields)
	i = ((i % n) + n) % n
	for _, ref := range fields {
		a.input(ref).Blur()
	}
	a.focus = i
	return a.input(fields[i]).Focus()
}

func (a *App) moveInGrid(dRow, dCol int) tea.Cmd {
	cur := a.focusedField()
	grid := a.gridA
	if cur.area == areaB {
		grid = a.gridB
	}
	if cur.area == areaForm || grid.empty() {
		return nil
	}
	d := grid.dims()
	target := fieldRef{
		area: cur.area,
		row:  min(max(cur.row+dRow, 0), d.Rows-1),
		col:  min(max(cur.col+dCol, 0), d.Cols-1),
	}
	for i, ref := range a.fields() {
		if ref == target {
			return a.setFocus(i)
		}
	}
	return nil
}

func (a *App) updateFocused(msg tea.Msg) tea.Cmd {
	in := a.input(a.focusedField())
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (a *App) View() string {
	header := renderHeader(appTitle, a.width)
	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		a.renderSection("Dimensions", a.formView()),
		a.matricesView(),
	)
	statusLine := a.renderStatus()
	footer := a.renderFooter(a.keys.HelpBindings(a.scope()))
	if a.modal != nil {
		return a.composeModal(body, statusLine, footer)
	}
	return a.placeWithFooter(body, statusLine, footer)
}

func (a *App) formView() string {
	field := func(i int) string {
		style := cellStyle
		if a.focus == i {
			style = focusedCellStyle
		}
		return labelStyle.Render(fitWidth(dimLabels[i], 18)) +
			style.Render("["+fitWidth(a.dims[i].View(), 5)+"]")
	}
	return field(dimRowsA) + "   " + field(dimColsA) + "\n" +
		field(dimRowsB) + "   " + field(dimColsB)
}

func (a *App) matricesView() string {
	if a.gridA.empty() {
		return hintStyle.Render("  No matrices yet. Current shape: A " + a.shape.A.String() + ", B " + a.shape.B.String())
	}
	cur := a.focusedField()
	focusA, focusB := [2]int{-1, -1}, [2]int{-1, -1}
	switch cur.area {
	case areaA:
		focusA = [2]int{cur.row, cur.col}
	case areaB:
		focusB = [2]int{cur.row, cur.col}
	}
	parts := []string{
		a.gridA.view(a.cellWidth, focusA[0], focusA[1]),
		operatorStyle.Render("×"),
		a.gridB.view(a.cellWidth, focusB[0], focusB[1]),
	}
	if a.product != nil {
		result := titleStyle.Render("A×B "+a.product.Dims().String()) + "\n" + a.result.View()
		parts = append(parts, operatorStyle.Render("="), result)
	}
	return a.renderSection("Matrices", lipgloss.JoinHorizontal(lipgloss.Center, parts...))
}

// Product returns the last computed product, or nil.
func (a *App) Product() matrix.Matrix { return a.product }
