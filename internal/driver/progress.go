package driver

import "time"

// Stage identifies a step of a lex session.
type Stage string

const (
	// StageLoad reads and decodes the file.
	StageLoad Stage = "load"
	// StageLex scans the buffer to End.
	StageLex Stage = "lex"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for one file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink receives progress events. Implementations must be safe for
// concurrent use: LexFiles reports from several goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ProgressFunc adapts a function to ProgressSink.
type ProgressFunc func(Event)

func (f ProgressFunc) OnEvent(ev Event) { f(ev) }

// ChannelSink forwards events to a channel.
type ChannelSink chan<- Event

func (c ChannelSink) OnEvent(ev Event) { c <- ev }

func emit(sink ProgressSink, file string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}
