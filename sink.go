package viz

// Style carries the resolved drawing attributes for one path or marker
// batch. Color resolution (names, colormaps) happens in the host layer;
// by the time a Style reaches a PathSink every field is concrete.
type Style struct {
	LineWidth float64
	Stroke    RGBA
	Fill      RGBA
}

// PathSink receives projected 2D geometry together with resolved styles.
// The host rendering backend (raster, vector, GUI-embedded) implements
// it; nothing in viz rasterizes.
//
// Implementations must treat the vertex slices as read-only and must not
// retain them after the call returns: the plot3d collections reuse their
// projection buffers on the next draw.
type PathSink interface {
	// StrokePath draws an open polyline through pts.
	StrokePath(pts []Point, s Style)

	// FillPath fills the polygon described by pts. The polygon is
	// implicitly closed.
	FillPath(pts []Point, s Style)

	// DrawMarkers draws one marker per point. sizes, widths and colors
	// are bound positionally to pts; sizes and widths may be nil for
	// uniform markers, and colors may be nil to fill every marker with
	// s.Fill. Per-marker colors carry effects like depth-shaded alpha.
	DrawMarkers(pts []Point, sizes, widths []float64, colors []RGBA, s Style)
}
