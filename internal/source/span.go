package source

import "fmt"

// Span addresses a half-open byte range [Start, End) inside one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// NewSpan builds a span over [start, end) in the given file.
func NewSpan(file FileID, start, end uint32) Span {
	return Span{File: file, Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
