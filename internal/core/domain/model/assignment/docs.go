// Package assignment holds the transient state of the two-step scan
// workflow: a piece scan opens a PendingAssignment for the operator, and the
// following rack scan commits it. Sessions live only in memory, one per
// operator, inside a SessionStore with a configurable timeout.
package assignment
