// Package service implements the task operations: input validation, a
// single storage call per operation, and best-effort event emission on
// successful mutations.
package service
