package callsite

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/roach88/ease/internal/paths"
)

// Placeholders rendered for missing frame fields.
const (
	UnknownFile     = "<unknown file>"
	UnknownLine     = "<unknown line>"
	UnknownFunction = "<unknown function>"
)

// maxDepth bounds how many program counters Capture collects.
const maxDepth = 64

// Frame is one entry of a captured call stack.
//
// File and Line describe where the call was made; Function and Type name
// the function that was called there. The function enclosing File:Line is
// therefore named by the next frame outward.
type Frame struct {
	File     string
	Line     int
	Function string
	Type     string
}

// HasLocation reports whether the frame carries file and line information.
func (f Frame) HasLocation() bool {
	return f.File != "" && f.Line > 0
}

// Stack is a captured call stack, innermost frame first.
type Stack []Frame

// at returns the frame at i, or the zero Frame when i is out of range.
func (s Stack) at(i int) Frame {
	if i < 0 || i >= len(s) {
		return Frame{}
	}
	return s[i]
}

// Capturer supplies call stacks. skip counts frames above the caller of
// Capture to leave out.
type Capturer interface {
	Capture(skip int) Stack
}

// RuntimeCapturer captures stacks from the Go runtime.
//
// Thread-safety: RuntimeCapturer is stateless and safe for concurrent use.
type RuntimeCapturer struct{}

// Capture returns the caller's stack with skip additional frames removed.
func (RuntimeCapturer) Capture(skip int) Stack {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(2+skip, pcs)
	if n == 0 {
		return nil
	}

	var raw []runtime.Frame
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		raw = append(raw, f)
		if !more {
			break
		}
	}

	stack := make(Stack, len(raw))
	for i, f := range raw {
		typ, fn := SplitFunction(f.Function)
		stack[i] = Frame{Function: fn, Type: typ}
		if i+1 < len(raw) {
			stack[i].File = raw[i+1].File
			stack[i].Line = raw[i+1].Line
		}
	}
	return stack
}

// Site is the resolved origin of a log entry.
type Site struct {
	File     string `json:"file,omitempty"` // shortened, empty when unknown
	Line     int    `json:"line,omitempty"` // zero when unknown
	Function string `json:"function,omitempty"`
	Type     string `json:"type,omitempty"`
}

// String renders the site as "{file}:{line}  {Type::}{function}()".
func (s Site) String() string {
	file := s.File
	if file == "" {
		file = UnknownFile
	}
	line := UnknownLine
	if s.Line > 0 {
		line = fmt.Sprint(s.Line)
	}
	fn := s.Function
	if fn == "" {
		fn = UnknownFunction
	}
	typ := s.Type
	if typ != "" {
		typ += "::"
	}
	return fmt.Sprintf("%s:%s  %s%s()", file, line, typ, fn)
}

// Resolve attributes stack[index] to a Site.
//
// The location comes from the nearest frame at or below index that has
// one; the identity comes from the frame after it.
func Resolve(stack Stack, index int) Site {
	loc := locationFrame(stack, index)
	where := stack.at(loc)
	who := identityFrame(stack, loc)

	site := Site{
		Line:     where.Line,
		Function: who.Function,
		Type:     who.Type,
	}
	if where.File != "" {
		site.File = ShortenPath(where.File)
	}
	return site
}

// locationFrame returns the index of the frame that supplies file and line.
//
// When the requested frame has no location the walk moves toward index 0
// and then steps one frame further, keeping location and identity paired.
func locationFrame(stack Stack, index int) int {
	if index < 0 {
		index = 0
	}
	if stack.at(index).HasLocation() {
		return index
	}

	i := min(index, len(stack)-1)
	for i > 0 && !stack[i].HasLocation() {
		i--
	}
	return i - 1
}

// identityFrame returns the frame naming the function that contains the
// location at loc.
func identityFrame(stack Stack, loc int) Frame {
	return stack.at(loc + 1)
}

// ShortenPath keeps the last two segments of p behind ".../".
func ShortenPath(p string) string {
	return paths.Shorten(p)
}

// SplitFunction splits a fully qualified Go function name into its owning
// type and function name.
//
//	"example.com/app/pkg.(*Store).Append" -> ("pkg.Store", "Append")
//	"example.com/app/pkg.Open"            -> ("", "pkg.Open")
func SplitFunction(name string) (typ, fn string) {
	if name == "" {
		return "", ""
	}
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	pkg, rest, ok := strings.Cut(name, ".")
	if !ok {
		return "", name
	}

	if strings.HasPrefix(rest, "(*") {
		if end := strings.Index(rest, ")."); end > 0 {
			return pkg + "." + rest[2:end], rest[end+2:]
		}
	}
	return "", pkg + "." + rest
}
