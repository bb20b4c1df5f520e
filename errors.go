package depq

import "errors"

// ErrWrongLocator is raised when DeleteLocator is called with a locator
// that does not belong to the queue it's invoked against, or whose
// recorded index no longer refers back to it.
var ErrWrongLocator = errors.New("depq: locator does not belong to this queue")

// ErrAlreadyAttached is raised by InsertLocator when the given locator is
// already attached to some queue.
var ErrAlreadyAttached = errors.New("depq: locator is already attached to a queue")

// ErrNotAttached is raised internally when a queue's swap/delete bookkeeping
// finds a detached locator where an attached one was expected. It indicates
// a broken invariant, not a caller mistake reachable through the public API.
var ErrNotAttached = errors.New("depq: locator is not attached to any queue")

// ErrNonDuplicable is raised by Locator.Dup: locators are identity-only
// handles and cannot be cloned.
var ErrNonDuplicable = errors.New("depq: locator cannot be duplicated")

// ErrInvalidComparator is raised by New when it is given a nil comparator.
var ErrInvalidComparator = errors.New("depq: comparator is required")
