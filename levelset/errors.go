// SPDX-License-Identifier: MIT

package levelset

import "errors"

var (
	// ErrCycleDetected indicates the input graph is not acyclic; no schedule
	// exists.
	ErrCycleDetected = errors.New("levelset: cycle detected")

	// ErrNotForest indicates a node with more than one successor was given
	// to the Tree strategy.
	ErrNotForest = errors.New("levelset: graph is not an in-forest")

	// ErrMalformed indicates inconsistent input arrays: parent ids out of
	// range, child counts that disagree with the parents, or level arrays
	// that are not a partition.
	ErrMalformed = errors.New("levelset: malformed input")

	// ErrInvalidSchedule indicates a level partition that breaks a
	// dependency or places a node later than its dependencies require.
	ErrInvalidSchedule = errors.New("levelset: invalid schedule")

	// ErrUnknownAlgorithm indicates a strategy name ByName does not know.
	ErrUnknownAlgorithm = errors.New("levelset: unknown algorithm")
)
