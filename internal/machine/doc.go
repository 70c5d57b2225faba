// Package machine implements the stored/ready payload state machine.
//
// The machine has two states and two transitions:
//
//	stored --Advance--> ready --Retreat--> stored
//
// A State handle wraps whichever state the machine is in. Transitions consume
// the handle: on success the caller receives a new handle and the old one is
// dead, on rejection the caller receives the original handle untouched along
// with ErrIllegalTransition. Because every operation hands back the one live
// handle, there is never more than one usable view of the machine.
//
// State data lives in the nested internal/core package, where its fields are
// sealed off from this one. A transition can only obtain the data by calling
// the source state's Exit and can only build the successor by calling the
// destination's Enter constructor, so the exit and entry procedures cannot be
// skipped or reordered. The per-transition envelope types (StoredResult,
// ReadyResult) close the loop: each lists exactly the states its transition
// may produce, and converting an envelope is the only way a transition yields
// a new handle.
package machine
