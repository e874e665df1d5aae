package notebook

import "strings"

// OutputType identifies the kind of an output.
type OutputType uint8

const (
	OutputStream OutputType = iota
	OutputExecuteResult
	OutputDisplayData
	OutputError
)

// String returns the wire discriminator.
func (t OutputType) String() string {
	switch t {
	case OutputStream:
		return "stream"
	case OutputExecuteResult:
		return "execute_result"
	case OutputDisplayData:
		return "display_data"
	case OutputError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseOutputType maps a wire discriminator to an OutputType.
func ParseOutputType(s string) (OutputType, bool) {
	switch s {
	case "stream":
		return OutputStream, true
	case "execute_result":
		return OutputExecuteResult, true
	case "display_data":
		return OutputDisplayData, true
	case "error":
		return OutputError, true
	default:
		return 0, false
	}
}

// Stream names.
const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

// MIMEPlain is the MIME type of plain text representations.
const MIMEPlain = "text/plain"

// Output is one artifact produced by running a code cell:
// *StreamOutput, *ExecuteResult, *DisplayData or *ErrorOutput.
type Output interface {
	Type() OutputType

	// Fields returns the unrecognized keys of the output.
	Fields() Value

	isOutput()
}

// StreamOutput is text written to stdout or stderr.
type StreamOutput struct {
	Name  string
	Text  []string
	Extra Value
}

// ExecuteResult is the value of the last expression of a cell.
type ExecuteResult struct {
	ExecutionCount int
	Data           Value
	Metadata       Value
	Extra          Value
}

// DisplayData is a rich representation emitted explicitly by the kernel.
type DisplayData struct {
	Data     Value
	Metadata Value
	Extra    Value
}

// ErrorOutput is a raised exception.
type ErrorOutput struct {
	EName     string
	EValue    string
	Traceback []string
	Extra     Value
}

func (*StreamOutput) Type() OutputType  { return OutputStream }
func (*ExecuteResult) Type() OutputType { return OutputExecuteResult }
func (*DisplayData) Type() OutputType   { return OutputDisplayData }
func (*ErrorOutput) Type() OutputType   { return OutputError }

func (o *StreamOutput) Fields() Value  { return o.Extra }
func (o *ExecuteResult) Fields() Value { return o.Extra }
func (o *DisplayData) Fields() Value   { return o.Extra }
func (o *ErrorOutput) Fields() Value   { return o.Extra }

func (*StreamOutput) isOutput()  {}
func (*ExecuteResult) isOutput() {}
func (*DisplayData) isOutput()   {}
func (*ErrorOutput) isOutput()   {}

// Stdout builds a stdout stream output.
func Stdout(text string) *StreamOutput {
	return &StreamOutput{Name: StreamStdout, Text: SplitLines(text)}
}

// Stderr builds a stderr stream output.
func Stderr(text string) *StreamOutput {
	return &StreamOutput{Name: StreamStderr, Text: SplitLines(text)}
}

// ExecuteResultText builds an execute_result whose only representation is
// text/plain.
func ExecuteResultText(count int, text string) *ExecuteResult {
	data, _ := EmptyObject().Set(EscapePath(MIMEPlain), text)
	return &ExecuteResult{
		ExecutionCount: count,
		Data:           data,
		Metadata:       EmptyObject(),
	}
}

// DisplayDataText builds a display_data output with a text/plain payload.
func DisplayDataText(text string) *DisplayData {
	data, _ := EmptyObject().Set(EscapePath(MIMEPlain), text)
	return &DisplayData{Data: data, Metadata: EmptyObject()}
}

// NewErrorOutput builds an error output.
func NewErrorOutput(ename, evalue string, traceback []string) *ErrorOutput {
	return &ErrorOutput{EName: ename, EValue: evalue, Traceback: lines(traceback)}
}

// MIMEText returns the representation stored under mime in a MIME bundle.
// Multi-line representations stored as string arrays are joined.
func MIMEText(data Value, mime string) (string, bool) {
	res := data.Lookup(mime)
	if !res.Exists() {
		return "", false
	}
	if res.IsArray() {
		var b strings.Builder
		for _, part := range res.Array() {
			b.WriteString(part.String())
		}
		return b.String(), true
	}
	return res.String(), true
}

// OutputText returns a plain-text rendering of o for display.
func OutputText(o Output) string {
	switch o := o.(type) {
	case *StreamOutput:
		return strings.Join(o.Text, "")
	case *ExecuteResult:
		s, _ := MIMEText(o.Data, MIMEPlain)
		return s
	case *DisplayData:
		if s, ok := MIMEText(o.Data, MIMEPlain); ok {
			return s
		}
		return "[" + strings.Join(o.Data.Keys(), ", ") + "]"
	case *ErrorOutput:
		return o.EName + ": " + o.EValue
	default:
		return ""
	}
}

func cloneOutput(o Output) Output {
	switch o := o.(type) {
	case *StreamOutput:
		c := *o
		c.Text = lines(o.Text)
		return &c
	case *ExecuteResult:
		c := *o
		return &c
	case *DisplayData:
		c := *o
		return &c
	case *ErrorOutput:
		c := *o
		c.Traceback = lines(o.Traceback)
		return &c
	default:
		return nil
	}
}

// OutputsEqual reports whether two outputs are equal in every tracked field.
func OutputsEqual(a, b Output) bool {
	switch a := a.(type) {
	case *StreamOutput:
		b, ok := b.(*StreamOutput)
		return ok && a.Name == b.Name && equalLines(a.Text, b.Text) && a.Extra.Equal(b.Extra)
	case *ExecuteResult:
		b, ok := b.(*ExecuteResult)
		return ok && a.ExecutionCount == b.ExecutionCount &&
			a.Data.Equal(b.Data) && a.Metadata.Equal(b.Metadata) && a.Extra.Equal(b.Extra)
	case *DisplayData:
		b, ok := b.(*DisplayData)
		return ok && a.Data.Equal(b.Data) && a.Metadata.Equal(b.Metadata) && a.Extra.Equal(b.Extra)
	case *ErrorOutput:
		b, ok := b.(*ErrorOutput)
		return ok && a.EName == b.EName && a.EValue == b.EValue &&
			equalLines(a.Traceback, b.Traceback) && a.Extra.Equal(b.Extra)
	default:
		return false
	}
}
