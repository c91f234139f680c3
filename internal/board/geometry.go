package board

// Geometry describes how a viewport maps onto board cells.
type Geometry struct {
	CellW        int // viewport columns per board column
	CellH        int // viewport rows per board row
	MaxRows      int // upper bound on rows, 0 = unbounded
	MaxCols      int // upper bound on columns, 0 = unbounded
	ReservedRows int // viewport rows kept for the frame and HUD
	ReservedCols int // viewport columns kept for the frame
}

// DefaultGeometry returns the geometry used when no config overrides it.
// Each board column is two terminal cells wide so letters do not touch.
func DefaultGeometry() Geometry {
	return Geometry{
		CellW:        2,
		CellH:        1,
		MaxRows:      29,
		MaxCols:      29,
		ReservedRows: 4,
		ReservedCols: 2,
	}
}

// Dimensions computes board rows and columns for a viewport of w x h cells.
// It returns ok=false when the viewport is not known yet (w or h <= 0); the
// caller must then skip the rebuild. Otherwise both dimensions are at least 1.
func Dimensions(w, h int, g Geometry) (rows, cols int, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}

	cellW := max(g.CellW, 1)
	cellH := max(g.CellH, 1)

	rows = (h - g.ReservedRows) / cellH
	cols = (w - g.ReservedCols) / cellW

	if g.MaxRows > 0 {
		rows = min(rows, g.MaxRows)
	}
	if g.MaxCols > 0 {
		cols = min(cols, g.MaxCols)
	}

	return max(rows, 1), max(cols, 1), true
}
