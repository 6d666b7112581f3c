// Package tables finds tables on a decoded page and fills their cells.
//
// # Detectors
//
// Table detection is performed by types implementing the [Detector]
// interface. Detectors are registered by name and built fresh for every
// caller, since each carries its own [Config]:
//
//	detector, err := tables.NewDetector(tables.GeometricName)
//	if err != nil {
//	    return err
//	}
//	found, err := detector.Detect(page)
//
// # Geometric Detection
//
// The [GeometricDetector] works in four steps:
//
//  1. Fragments are clustered by vertical proximity.
//  2. Rows come from horizontal ruling lines when enough of them are drawn,
//     otherwise from fragments that share a vertical center. Sparse rows at
//     the top and bottom of a text-only cluster (titles, footers) are dropped.
//  3. Columns come from vertical ruling lines, otherwise from left edges
//     that line up.
//  4. Fragments are assigned to cells. In a ruled grid a missing vertical
//     rule merges cells, and the text lands in the leftmost one.
//
// Cell text is normalized so that compatibility forms such as a full-width
// "Ｘ" compare equal to their ASCII counterparts.
//
// # Confidence Scoring
//
// Detection confidence (0-1) is based on:
//
//   - Grid regularity (30%)
//   - Alignment quality (30%)
//   - Line presence (20%)
//   - Cell occupancy (20%)
//
// Tables scoring below [Config.MinConfidence] are discarded.
package tables
