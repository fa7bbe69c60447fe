// Package shortcircuit decides, before any check runs, whether a field's
// check chain is executed in full, collapsed to a single check, or skipped.
//
// Two rules are always installed first:
//
//   - a field whose chain contains "required" and whose input is nil or ""
//     runs only the "required" check;
//   - a field whose chain does not contain "required" and whose input is nil
//     or "" is skipped entirely.
//
// Additional rules are appended with Evaluator.Add and are consulted after
// the defaults. The first rule that matches ends the evaluation.
package shortcircuit
