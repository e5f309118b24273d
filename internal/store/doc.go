// Package store holds the client application state and the closed set of
// actions that may change it.
//
// State is only mutated by dispatching an [Action] into a [Store]; each action
// is applied by a pure reducer, so the same prior state and action always
// produce the same next state. Network and clock reads live in the flows
// package, never here.
package store
