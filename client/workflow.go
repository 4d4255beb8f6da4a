package client

import "time"

// Application status workflow. Transitions are deliberately unrestricted:
// the triage UI is a free-choice selector and employers may revert a
// decision (un-reject, move back to pending). Every change is recorded in
// the application's status history.

// SetStatus returns a copy of app with the new status and an audit entry
// appended. Setting the current status again is a no-op. The result lives
// in the caller's collection only until pushed through a write operation.
func SetStatus(app Application, newStatus ApplicationStatus, actorID string) Application {
	if app.Status == newStatus {
		return app
	}

	history := make([]StatusChange, len(app.StatusHistory), len(app.StatusHistory)+1)
	copy(history, app.StatusHistory)
	history = append(history, StatusChange{
		From:      app.Status,
		To:        newStatus,
		ChangedAt: time.Now().UTC(),
		ActorID:   actorID,
	})

	app.Status = newStatus
	app.StatusHistory = history
	return app
}

// SetNotes returns a copy of app with the notes replaced. The latest note
// wins; an empty string clears prior notes and no history is kept.
func SetNotes(app Application, text string) Application {
	app.Notes = text
	return app
}
