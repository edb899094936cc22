package common

// UnknownStr is the display string for out-of-range enum values.
const UnknownStr = "unknown"
