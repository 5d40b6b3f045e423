// Package terminal is the interactive demo surface: it renders a small
// two-node diagram on a cell grid and lets the user drag the edge's
// segments with the mouse, exercising the full engine (hit-test,
// constrained drag, reconnection, re-render) end to end.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"orthodrag"
	"orthodrag/config"
	"orthodrag/geometry"
	"orthodrag/log"
)

// cellSize maps terminal cells onto canvas units, so a 20-unit grid is
// two cells wide.
const cellSize = 10.0

// Demo holds the interactive state for one terminal session.
type Demo struct {
	screen  tcell.Screen
	engine  *orthodrag.Engine
	edge    orthodrag.Edge
	gesture *orthodrag.Gesture
	status  string
}

// Run starts the demo loop with the given settings and blocks until the
// user quits.
func Run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	d := &Demo{
		screen: screen,
		engine: orthodrag.FromConfig(cfg.Editor),
		edge: orthodrag.Edge{
			Source: geometry.Point{X: 100, Y: 100},
			Target: geometry.Point{X: 400, Y: 240},
			ControlPoints: []geometry.Point{
				{X: 240, Y: 100},
				{X: 240, Y: 240},
			},
		},
		status: "drag a segment handle; g snap, s simplify, esc cancel, q quit",
	}
	return d.loop()
}

func (d *Demo) loop() error {
	for {
		d.draw()
		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			if done := d.handleKey(ev); done {
				return nil
			}
		case *tcell.EventMouse:
			d.handleMouse(ev)
		}
	}
}

func (d *Demo) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape:
		if d.gesture != nil {
			d.engine.CancelDrag(d.gesture)
			d.gesture = nil
			d.status = "drag cancelled"
			log.L().Info("drag cancelled")
			return false
		}
		return true
	case ev.Rune() == 'q':
		return true
	case ev.Rune() == 'g':
		d.engine.SnapToGrid = !d.engine.SnapToGrid
		d.status = fmt.Sprintf("grid snap: %v", d.engine.SnapToGrid)
	case ev.Rune() == 's':
		d.engine.SimplifyOnCommit = !d.engine.SimplifyOnCommit
		d.status = fmt.Sprintf("simplify on commit: %v", d.engine.SimplifyOnCommit)
	}
	return false
}

func (d *Demo) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	mouse := geometry.Point{X: float64(x) * cellSize, Y: float64(y) * cellSize}
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && d.gesture == nil:
		if g, ok := d.engine.BeginDrag(d.edge, mouse); ok {
			d.gesture = g
			d.status = fmt.Sprintf("dragging %s (%s)", g.Segment().ID, g.Segment().Direction)
			log.L().Info("drag started", "segment", g.Segment().ID, "direction", g.Segment().Direction.String())
		}
	case pressed && d.gesture != nil:
		if path, ok := d.engine.MoveDrag(d.gesture, mouse); ok {
			d.status = path.SVGPath
		}
	case !pressed && d.gesture != nil:
		if edge, path, ok := d.engine.EndDrag(d.gesture); ok {
			d.edge = edge
			d.status = fmt.Sprintf("committed %d waypoints, length %.0f", len(edge.ControlPoints), path.TotalLength)
			log.L().Info("drag committed", "waypoints", len(edge.ControlPoints), "length", path.TotalLength)
		}
		d.gesture = nil
	}
}

func (d *Demo) draw() {
	d.screen.Clear()

	points := d.previewPoints()
	drawPolyline(d.screen, points)
	for _, s := range d.engine.Handler.Segments(d.currentControlPoints(), d.edge.Source, d.edge.Target) {
		setCell(d.screen, s.Midpoint, '◆', tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	drawNode(d.screen, d.edge.Source, "src")
	drawNode(d.screen, d.edge.Target, "dst")

	_, h := d.screen.Size()
	drawText(d.screen, 0, h-1, d.status)
	d.screen.Show()
}

func (d *Demo) currentControlPoints() []geometry.Point {
	if d.gesture != nil {
		return d.gesture.ControlPoints()
	}
	return d.edge.ControlPoints
}

func (d *Demo) previewPoints() []geometry.Point {
	path := d.engine.Paths.Calculate(d.edge.Source, d.edge.Target, d.currentControlPoints(), d.engine.Options)
	return path.Waypoints
}

// drawPolyline renders the orthogonal point chain with box-drawing
// glyphs, picking corner characters from the turn direction.
func drawPolyline(s tcell.Screen, points []geometry.Point) {
	style := tcell.StyleDefault
	for i := 0; i < len(points)-1; i++ {
		drawLine(s, points[i], points[i+1], style)
	}
	for i := 1; i < len(points)-1; i++ {
		setCell(s, points[i], cornerRune(points[i-1], points[i], points[i+1]), style)
	}
}

func drawLine(s tcell.Screen, a, b geometry.Point, style tcell.Style) {
	ax, ay := cell(a)
	bx, by := cell(b)
	if ay == by {
		lo, hi := minInt(ax, bx), maxInt(ax, bx)
		for x := lo; x <= hi; x++ {
			s.SetContent(x, ay, '─', nil, style)
		}
		return
	}
	lo, hi := minInt(ay, by), maxInt(ay, by)
	for y := lo; y <= hi; y++ {
		s.SetContent(ax, y, '│', nil, style)
	}
}

// cornerRune picks the box-drawing corner for the turn at mid.
func cornerRune(prev, mid, next geometry.Point) rune {
	in := geometry.DirectionBetween(prev, mid)
	if in == geometry.DirectionBetween(mid, next) {
		if in == geometry.Horizontal {
			return '─'
		}
		return '│'
	}
	// The corner connects one horizontal and one vertical arm; pick the
	// glyph from which compass directions they point to.
	horizontalArm, verticalArm := prev, next
	if in == geometry.Vertical {
		horizontalArm, verticalArm = next, prev
	}
	west := horizontalArm.X < mid.X
	north := verticalArm.Y < mid.Y
	switch {
	case west && north:
		return '┘'
	case west && !north:
		return '┐'
	case !west && north:
		return '└'
	default:
		return '┌'
	}
}

func drawNode(s tcell.Screen, center geometry.Point, label string) {
	cx, cy := cell(center)
	w := len(label) + 4
	style := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	for x := 0; x < w; x++ {
		s.SetContent(cx-w/2+x, cy-1, '─', nil, style)
		s.SetContent(cx-w/2+x, cy+1, '─', nil, style)
	}
	s.SetContent(cx-w/2, cy-1, '┌', nil, style)
	s.SetContent(cx+w-1-w/2, cy-1, '┐', nil, style)
	s.SetContent(cx-w/2, cy+1, '└', nil, style)
	s.SetContent(cx+w-1-w/2, cy+1, '┘', nil, style)
	s.SetContent(cx-w/2, cy, '│', nil, style)
	s.SetContent(cx+w-1-w/2, cy, '│', nil, style)
	drawText(s, cx-len(label)/2, cy, label)
}

func drawText(s tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func setCell(s tcell.Screen, p geometry.Point, r rune, style tcell.Style) {
	x, y := cell(p)
	s.SetContent(x, y, r, nil, style)
}

func cell(p geometry.Point) (int, int) {
	return int(p.X / cellSize), int(p.Y / cellSize)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
