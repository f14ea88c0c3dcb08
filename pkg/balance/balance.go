// Package balance checks whether the brackets in an expression are correctly nested.
package balance

import (
	"strings"
)

// pairs maps each opening bracket to its closing bracket.
var pairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

// closers is the set of closing brackets, derived from pairs.
var closers = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(pairs))
	for _, c := range pairs {
		set[c] = struct{}{}
	}
	return set
}()

// Closer returns the closing bracket for an opening bracket.
func Closer(open rune) (rune, bool) {
	c, ok := pairs[open]
	return c, ok
}

// IsOpener reports whether r is an opening bracket.
func IsOpener(r rune) bool {
	_, ok := pairs[r]
	return ok
}

// IsCloser reports whether r is a closing bracket.
func IsCloser(r rune) bool {
	_, ok := closers[r]
	return ok
}

// Action identifies the stack operation recorded by an Event.
type Action int

const (
	// ActionPush means an opening bracket was pushed.
	ActionPush Action = iota
	// ActionPop means a closing bracket matched the top of the stack.
	ActionPop
	// ActionErrEmpty means a closing bracket arrived with nothing open.
	ActionErrEmpty
	// ActionErrMismatch means a closing bracket did not match the top of the stack.
	ActionErrMismatch
)

// String returns the action tag.
func (a Action) String() string {
	switch a {
	case ActionPush:
		return "PUSH"
	case ActionPop:
		return "POP"
	case ActionErrEmpty:
		return "POP_ERROR_EMPTY"
	case ActionErrMismatch:
		return "POP_ERROR_MISMATCH"
	default:
		return "UNKNOWN"
	}
}

// IsError reports whether the action terminated the check.
func (a Action) IsError() bool {
	return a == ActionErrEmpty || a == ActionErrMismatch
}

// Event records one stack operation taken while scanning a bracket.
type Event struct {
	Position int    // 1-based, counted in runes
	Char     rune   // the bracket that was scanned
	Action   Action // what happened to the stack
	Popped   rune   // opener removed from the stack (ActionPop, ActionErrMismatch)
	Expected rune   // closer the popped opener needed (ActionErrMismatch)

	// Stack lists the open brackets bottom to top. For ActionErrMismatch it is the
	// stack as it stood when the offending closer arrived.
	Stack []rune
}

// Summary describes the stack once the whole expression was scanned.
type Summary struct {
	Stack []rune
	Empty bool
}

// Result is the full outcome of a check.
type Result struct {
	Balanced bool
	Events   []Event

	// Final is nil when the scan stopped early on an error event.
	Final *Summary

	// FailedAt is the position of the error event, or 0.
	FailedAt int
}

// CheckBalance reports whether expr is balanced, along with the trace of stack
// operations. Characters other than brackets are ignored.
func CheckBalance(expr string) (bool, []Event) {
	res := Check(expr)
	return res.Balanced, res.Events
}

// Check runs the balance check on expr and returns the complete result.
//
// The first closer that finds an empty stack, or that does not match the most
// recently opened bracket, ends the check immediately. Brackets still open at the
// end make the expression unbalanced without producing an error event.
func Check(expr string) Result {
	var (
		stack  []rune
		events []Event
		pos    int
	)

	for _, c := range expr {
		pos++

		switch {
		case IsOpener(c):
			stack = append(stack, c)
			events = append(events, Event{
				Position: pos,
				Char:     c,
				Action:   ActionPush,
				Stack:    snapshot(stack),
			})

		case IsCloser(c):
			if len(stack) == 0 {
				events = append(events, Event{
					Position: pos,
					Char:     c,
					Action:   ActionErrEmpty,
					Stack:    []rune{},
				})
				return Result{Events: events, FailedAt: pos}
			}

			top := stack[len(stack)-1]
			if want := pairs[top]; want != c {
				events = append(events, Event{
					Position: pos,
					Char:     c,
					Action:   ActionErrMismatch,
					Popped:   top,
					Expected: want,
					Stack:    snapshot(stack),
				})
				return Result{Events: events, FailedAt: pos}
			}

			stack = stack[:len(stack)-1]
			events = append(events, Event{
				Position: pos,
				Char:     c,
				Action:   ActionPop,
				Popped:   top,
				Stack:    snapshot(stack),
			})
		}
	}

	final := &Summary{Stack: snapshot(stack), Empty: len(stack) == 0}
	return Result{
		Balanced: final.Empty,
		Events:   events,
		Final:    final,
	}
}

// snapshot copies the stack so later pushes don't alias earlier events.
func snapshot(stack []rune) []rune {
	out := make([]rune, len(stack))
	copy(out, stack)
	return out
}

// FormatStack renders a stack bottom to top, comma-separated.
func FormatStack(stack []rune) string {
	parts := make([]string, len(stack))
	for i, r := range stack {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
