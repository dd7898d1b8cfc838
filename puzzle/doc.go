// Package puzzle is the shared plumbing behind every daily solution:
// it turns raw puzzle text into convenient views, keeps a registry of
// solutions keyed by (year, day), and runs a solution's two parts while
// timing them.
//
// What:
//
//   - Input wraps the raw text and exposes Lines, NonEmptyLines and Blocks.
//   - Solution pairs a date and title with up to two PartFunc kernels.
//   - Registry stores solutions and rejects duplicates or impossible dates.
//   - Run executes both parts, capturing values, errors and elapsed time.
//
// Errors:
//
//   - ErrMalformedInput: a kernel could not parse its input.
//   - ErrUnknownPuzzle: no solution is registered for the requested date.
//   - ErrDuplicatePuzzle: a date was registered twice.
//   - ErrBadDate: the year or day is outside the puzzle calendar.
//   - ErrNoAnswer: a part has no kernel (the final day has a single part).
//
// Kernels are pure: they read the Input, return an int, and never touch
// global state. That keeps every day independently testable with the
// published sample input.
package puzzle
