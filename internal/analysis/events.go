package analysis

// Status describes how far one file has progressed through the scan.
type Status string

const (
	StatusQueued   Status = "queued"
	StatusReading  Status = "reading"
	StatusScanning Status = "scanning"
	StatusDone     Status = "done"
	StatusError    Status = "error"
)

// Event is one progress notification for one file.
type Event struct {
	File   string
	Status Status
	Issues int // set on StatusDone
}

// Sink receives progress events during a scan.
type Sink interface {
	OnEvent(evt Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	s.Ch <- evt
}

func emit(sink Sink, file string, status Status, issues int) {
	if sink != nil {
		sink.OnEvent(Event{File: file, Status: status, Issues: issues})
	}
}
