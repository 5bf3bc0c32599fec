// Package bezier is the editing engine behind a vector drawing tool. It keeps
// a piecewise cubic Bézier curve editable by direct manipulation and by
// freehand strokes, with every edit undoable.
//
// # Curves
//
// A [Curve] holds three parallel sequences. Anchors are the points the curve
// passes through. Handles come in pairs, an incoming and an outgoing handle
// per anchor, so handle 2a belongs to anchor a on its way in and handle 2a+1
// on its way out. Segment i is the cubic from anchor i through handles 2i+1
// and 2i+2 to anchor i+1. The incoming handle of the first anchor and the
// outgoing handle of the last shape nothing; they are kept so that extending
// the curve does not lose them.
//
// The third sequence is the sample polyline: every segment evaluated at
// Interpolation+1 evenly spaced parameters, neighbouring segments sharing
// their common anchor. A curve with N ≥ 2 anchors therefore has
// 1+(N-1)·Interpolation samples. Samples are what gets drawn, hit-tested and
// stored, and every mutation recomputes only the windows of the segments it
// touched. [Curve.AnchorOfSample] and [Curve.SampleOfAnchor] convert between
// the two index spaces.
//
// # Editing and undo
//
// The mutators on [Curve] apply edits directly. A [Session] wraps a curve,
// applies the same edits and records each as a [Command] holding the state it
// replaced. [Session.Undo] reverts the most recent edit exactly: anchors,
// handles and samples compare equal to what they were.
//
// Freehand strokes are merged with [Session.MergeStroke]. The stroke is
// smoothed with [Smooth], fitted with [FitPolyline] and spliced into the
// curve in place of the span it was drawn over. A merge records several
// commands bracketed by [BeginMergeCommand] and [EndMergeCommand] and undoes
// as one.
//
// # Conversion
//
// Stored geometry is plain polylines. [FromPolylineAuto] recognizes polylines
// that are the samples of a curve with the configured interpolation, using
// [IsLikelyBezierSample], and recovers the anchors and handles exactly with
// [SolveControlPoints]. Other polylines are turned into straight segments or
// fitted. [Curve.Geometry] and [FromGeometry] convert to and from
// [github.com/twpayne/go-geom] points, line strings and polygons.
//
// # Logging
//
// The package logs nothing by default. [SetLogger] installs a [log/slog]
// logger that receives debug records about fitting, merging, undo and
// conversion.
package bezier
