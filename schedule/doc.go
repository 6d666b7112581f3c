// Package schedule reconstructs a normalized work schedule from the raw grid
// that a PDF table extractor produces.
//
// A schedule PDF prints one flattened table: a header row whose week labels
// ("Jan 5 to Jan 11") stand in for per-day column names, followed by groups of
// job rows. Each group is introduced by a boundary row that carries only the
// employee's display name in the description column.
//
// # Pipeline
//
// Three pure functions do the structural work, in dependency order:
//
//   - [ResolveDateWindow] turns the two week labels plus the publish date into
//     a [DateWindow], one calendar date per day column.
//   - [DetectGroups] finds boundary rows and partitions the grid into
//     [EmployeeGroup] member ranges.
//   - [Reshape] keys day columns by date, coerces day cells to booleans, names
//     every member row and drops the boundary rows.
//
// A [Session] ties them to the two external collaborators
// ([TextExtractor] and [TableExtractor]) and memoizes each derived value for
// the lifetime of one conversion:
//
//	s := schedule.NewSession(path, textSrc, tableSrc)
//	table, err := s.Table()
//
// # Errors
//
// Failures unwrap to one of [ErrMalformedDateLabel], [ErrAmbiguousYear],
// [ErrNoGroupsFound], [ErrColumnCountMismatch] or [ErrExtractionFailed], so
// callers can branch with errors.Is. Non-fatal issues (an empty group, week
// labels that cross a year boundary) are reported as [Warning] values.
//
// # Known limitations
//
// Every parsed date takes the publish date's year. A schedule whose weeks span
// December into January gets January dates in the wrong year; the session
// reports this with [WarnYearRollover] but does not correct it.
package schedule
