package ast

import "fmt"

// Location is a contiguous span (start, end) over a token stream, addressed
// by the immutable rune slice the lexer/parser produced it from. It is the
// unit every error and every transcript entry is keyed on.
type Location struct {
	filePath    string
	fileContent []rune
	start       uint32
	end         uint32
}

func NewLocation(filePath string, content []rune, start uint32, end uint32) Location {
	return Location{
		filePath:    filePath,
		fileContent: content,
		start:       start,
		end:         end,
	}
}

func NewLocationCursor(filePath string, content []rune, start uint32) Location {
	return NewLocation(filePath, content, start, start)
}

// EmptyLocation returns the zero Location, used when a node has no source span of
// its own (a synthesized formula has none).
func EmptyLocation() Location {
	return Location{}
}

func (loc Location) EqualsTo(other Location) bool {
	return loc.filePath == other.filePath && loc.start == other.start && loc.end == other.end
}

func (loc Location) IsEmpty() bool {
	return loc.filePath == "" && loc.start == 0 && loc.end == 0
}

func (loc Location) CursorString() string {
	if loc.filePath == "" {
		return ""
	}
	line, col, _, _ := loc.GetLineAndColumn()
	return fmt.Sprintf("%s:%d:%d", loc.filePath, line, col)
}

func (loc Location) GetLineAndColumn() (startLine, startColumn, endLine, endColumn int) {
	line := 1
	column := 1

	for i := uint32(0); i < uint32(len(loc.fileContent)); i++ {
		if i == loc.start {
			startLine = line
			startColumn = column
		}
		if i == loc.end {
			endLine = line
			endColumn = column
		}

		if loc.fileContent[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return
}

func (loc Location) FilePath() string {
	return loc.filePath
}

// Text returns the original source text of the span, unaffected by any
// rewriting the proof pass has done elsewhere.
func (loc Location) Text() string {
	if loc.fileContent == nil {
		return ""
	}
	return string(loc.fileContent[loc.start:loc.end])
}

func (loc Location) Contains(cursor Location) bool {
	return loc.start <= cursor.start && cursor.end <= loc.end
}

func (loc Location) Start() uint32 {
	return loc.start
}

func (loc Location) End() uint32 {
	return loc.end
}

func (loc Location) Size() uint32 {
	return loc.end - loc.start
}

// Join returns the smallest span covering both locations; an empty
// location on either side yields the other one unchanged.
func (loc Location) Join(other Location) Location {
	if loc.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return loc
	}
	start, end := loc.start, loc.end
	if other.start < start {
		start = other.start
	}
	if other.end > end {
		end = other.end
	}
	return Location{filePath: loc.filePath, fileContent: loc.fileContent, start: start, end: end}
}
