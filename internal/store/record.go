package store

import (
	"encoding/json"
	"fmt"

	"hornethive-server/internal/model"
)

// schemaVersion tags persisted records. Bump when the WeeklyPoll shape
// changes and add a migration step in migrateRecord.
const schemaVersion = 1

// decodeRecord parses and validates a persisted poll record, applying schema
// migrations as needed. Anything it rejects is treated as corrupt and deleted
// by the caller.
func decodeRecord(raw []byte) (*model.WeeklyPoll, error) {
	var poll model.WeeklyPoll
	if err := json.Unmarshal(raw, &poll); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := migrateRecord(&poll); err != nil {
		return nil, err
	}
	if err := validateRecord(&poll); err != nil {
		return nil, err
	}
	return &poll, nil
}

func migrateRecord(poll *model.WeeklyPoll) error {
	switch {
	case poll.SchemaVersion == schemaVersion:
		return nil
	case poll.SchemaVersion > schemaVersion:
		return fmt.Errorf("record schema %d newer than supported %d", poll.SchemaVersion, schemaVersion)
	default:
		// Version 0 records predate the schema_version field and carried a
		// different shape; they cannot be upgraded reliably.
		return fmt.Errorf("unmigratable record schema %d", poll.SchemaVersion)
	}
}

func validateRecord(poll *model.WeeklyPoll) error {
	if poll.WeekID == "" {
		return fmt.Errorf("missing week_id")
	}
	if poll.Votes == nil {
		return fmt.Errorf("missing votes map")
	}
	if len(poll.PostOptions) > 5 {
		return fmt.Errorf("too many post options: %d", len(poll.PostOptions))
	}
	for _, o := range poll.PostOptions {
		if o.ID == "" {
			return fmt.Errorf("post option missing id")
		}
	}
	// Every vote key must correspond to a listed option.
	for key, count := range poll.Votes {
		if count < 0 {
			return fmt.Errorf("negative vote count for %q", key)
		}
		if !poll.HasOption(key) {
			return fmt.Errorf("vote key %q matches no option", key)
		}
	}
	if poll.UserVote != "" && !poll.HasOption(poll.UserVote) {
		return fmt.Errorf("user vote %q matches no option", poll.UserVote)
	}
	return nil
}
