package audio

// StartAmbientMsg asks the app to begin ambient playback. Emitted by the
// welcome screen on the learner's first interaction, since audio output
// should not start before they opt in.
type StartAmbientMsg struct{}
