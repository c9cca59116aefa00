package tui

// statusLevel selects the color of the status line
type statusLevel int

const (
	statusNone statusLevel = iota
	statusSuccess
	statusError
)

// status is the feedback line under the fortune. Every user action sets it.
type status struct {
	level statusLevel
	text  string
}

func successStatus(text string) status {
	return status{level: statusSuccess, text: text}
}

func errorStatus(text string) status {
	return status{level: statusError, text: text}
}
