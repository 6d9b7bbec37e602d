// Package diff computes and renders line-level differences between an "old" and a "new" string.
//
// Representation: a diff is an ordered []Line. Each Line has a Kind:
//   - Unchanged: the line is present on both sides (OldNumber and NewNumber are set)
//   - Removed: the line is present only on the old side (OldNumber is set, NewNumber is 0)
//   - Added: the line is present only on the new side (NewNumber is set, OldNumber is 0)
//
// Line numbers are 1-based. Content never contains '\n'; a trailing '\r' is kept as content.
//
// Algorithms: DiffLines (and Compute with AlgorithmGreedy, the default) uses a greedy two-pointer walk that classifies lines by membership rather than by alignment.
// When both current lines exist somewhere in the other text but not at the current position, both pointers advance and neither line is emitted. This gap is
// deliberate: existing output depends on it. Callers that need every line accounted for should use AlgorithmLCS, which runs a minimal line diff and satisfies:
//   - concat(Unchanged and Removed contents, "\n") == oldText
//   - concat(Unchanged and Added contents, "\n") == newText
//
// Getting a diff:
//
//	lines := diff.DiffLines(oldText, newText)
//	fmt.Println(diff.RenderUnified(lines, "old.txt", "new.txt", 3, false))
//
// Rendering:
//   - RenderPlain emits every line with a "+"/"-"/" " marker and no headers.
//   - RenderUnified emits a unified diff with @@ hunk headers, grouping nearby changes with contextSize lines of context. Set color to true to include ANSI colors.
//   - RenderHTML emits an inline or side-by-side HTML table of divs. Content is escaped.
//
// Patches: ParsePatch reads unified-diff text (for example a GitHub "patch" field) back into hunks of Lines.
package diff
