package source

type (
	// FileID uniquely identifies a loaded file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a file was loaded.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (tests, stdin).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 BOM was stripped during load.
	FileHadBOM
	// FileNormalizedCRLF indicates CRLF sequences were normalized to LF.
	FileNormalizedCRLF
)

// File captures the content and derived metadata of a single scanned file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// Text returns the file content as a string.
func (f *File) Text() string {
	return string(f.Content)
}

// LineCol is a human-readable position in a file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
