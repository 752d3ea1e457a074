// Package stack provides the stack-backed sequences that sit next to the
// monotonic-stack engine.
//
// What:
//
//   - Array: fixed-capacity stack over a slice.
//   - Linked: unbounded stack whose frames are nodes of a chain.Arena; push
//     inserts at the chain head and pop deletes it.
//   - Min: stack answering Min in O(1) by pairing every value with the
//     minimum below it.
//   - Two: two stacks sharing one array, growing toward each other.
//   - Balanced: bracket matching for "()", "[]" and "{}".
//
// Errors:
//
//   - ErrOverflow:  push onto a full fixed-capacity stack
//   - ErrUnderflow: pop or peek on an empty stack
//
// Complexity: every stack operation is O(1); Balanced is O(n).
package stack
