package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrSnapshotUnchanged is returned by Record when the save file has not
	// changed since the last snapshot of the same source.
	ErrSnapshotUnchanged = errors.New("save file unchanged since last snapshot")

	ErrEmptySource = errors.New("snapshot source is empty")

	// ErrLimitTooLarge is returned by List for a limit above MaxListLimit.
	ErrLimitTooLarge = errors.New("snapshot list limit is too large")
)
