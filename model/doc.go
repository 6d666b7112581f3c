// Package model holds the page-level representation that the PDF reader
// produces and the table detectors consume.
//
// # Pages
//
// A [Page] is a flat list of positioned [TextFragment] words plus the ruling
// [Line] segments drawn on the page. Coordinates follow PDF conventions: the
// origin is the bottom-left corner and Y grows upwards.
//
// # Tables
//
// A detected [Table] is a grid of [Cell] values together with the
// [TableGrid] boundaries it was built from and a detection confidence:
//
//	table := model.NewTable(rows, cols)
//	table.Rows[0][2].Text = "Jan 5 to Jan 11"
//	fmt.Print(table.ToMarkdown())
//
// # Geometry
//
//   - [BBox] - bounding box with intersection, union and containment
//   - [Point] - 2D point
package model
