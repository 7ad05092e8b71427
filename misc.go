package quicktween

// Tolerance used when comparing generated durations and magnitudes.
const epsilon = 1e-9

// --- errors ---
const emptySequence = "can't get the last keyframe of an empty sequence"
