package tui

// alertMsg carries a message raised by the gate while a submission runs.
type alertMsg struct {
	message string
}

// submitDoneMsg is produced once the gate has processed a typed key.
type submitDoneMsg struct {
	err      error
	unlocked bool
}
