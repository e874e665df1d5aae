package notebook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// serializeOptions reproduces the nbformat on-disk layout: one-space indent,
// sorted keys and one array element per line (Width 0).
var serializeOptions = &pretty.Options{Indent: " ", SortKeys: true}

// Parse decodes an .ipynb document.
//
// It fails with a *ParseError when data is not well-formed JSON, when a
// required field is missing or has the wrong type, or when a cell_type or
// output_type is not one of the known variants. On failure no Notebook is
// returned.
func Parse(data []byte) (*Notebook, error) {
	return parse("", data)
}

// ParseString is Parse for text input.
func ParseString(s string) (*Notebook, error) {
	return parse("", []byte(s))
}

func parse(path string, data []byte) (*Notebook, error) {
	nb, err := decodeNotebook(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
			return nil, perr
		}
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return nb, nil
}

// Serialize encodes n in canonical form. Parsing the result yields a
// Notebook equal to n.
func Serialize(n *Notebook) ([]byte, error) {
	doc := map[string]any{
		"cells":          encodeCells(n.cells),
		"metadata":       encodeMetadata(n.Metadata),
		"nbformat":       n.Format,
		"nbformat_minor": n.FormatMinor,
	}
	mergeExtra(doc, n.Extra)

	raw, err := marshalNoEscape(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding notebook: %w", err)
	}
	return pretty.PrettyOptions(raw, serializeOptions), nil
}

// SerializeString is Serialize returning text.
func SerializeString(n *Notebook) (string, error) {
	data, err := Serialize(n)
	return string(data), err
}

// object is a JSON object being decoded; it remembers which keys were
// consumed so the rest can be kept as extras.
type object struct {
	path   string
	fields map[string]json.RawMessage
	seen   map[string]bool
}

func decodeObject(raw json.RawMessage, path string) (*object, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fieldError(path, "expected object")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, &ParseError{Field: path, Message: err.Error(), Err: err}
	}
	return &object{path: path, fields: fields, seen: make(map[string]bool, len(fields))}, nil
}

func (o *object) field(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

func (o *object) take(key string) (json.RawMessage, bool) {
	raw, ok := o.fields[key]
	if ok {
		o.seen[key] = true
	}
	return raw, ok
}

func (o *object) require(key string) (json.RawMessage, error) {
	raw, ok := o.take(key)
	if !ok {
		return nil, fieldError(o.field(key), "required field missing")
	}
	return raw, nil
}

func (o *object) str(key string) (string, error) {
	raw, err := o.require(key)
	if err != nil {
		return "", err
	}
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return "", fieldError(o.field(key), "expected string")
	}
	return s, nil
}

func (o *object) optStr(key string) (*string, error) {
	raw, ok := o.take(key)
	if !ok || isNull(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fieldError(o.field(key), "expected string")
	}
	return &s, nil
}

// lines decodes a multiline string, stored either as one string or as an
// array of strings.
func (o *object) lines(key string) ([]string, error) {
	raw, err := o.require(key)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, fieldError(o.field(key), "expected string or array of strings")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return SplitLines(s), nil
	}
	var elems []*string
	if err := json.Unmarshal(raw, &elems); err != nil || elems == nil {
		return nil, fieldError(o.field(key), "expected string or array of strings")
	}
	if len(elems) == 0 {
		return nil, nil
	}
	list := make([]string, len(elems))
	for i, e := range elems {
		if e == nil {
			return nil, fieldError(fmt.Sprintf("%s[%d]", o.field(key), i), "expected string")
		}
		list[i] = *e
	}
	return list, nil
}

func (o *object) small(key string) (int, error) {
	raw, err := o.require(key)
	if err != nil {
		return 0, err
	}
	var n uint8
	if isNull(raw) || json.Unmarshal(raw, &n) != nil {
		return 0, fieldError(o.field(key), "expected small non-negative integer")
	}
	return int(n), nil
}

func (o *object) count(key string, nullable bool) (*int, error) {
	raw, err := o.require(key)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		if nullable {
			return nil, nil
		}
		return nil, fieldError(o.field(key), "expected non-negative integer")
	}
	var n uint64
	if err := json.Unmarshal(raw, &n); err != nil {
		if nullable {
			return nil, fieldError(o.field(key), "expected non-negative integer or null")
		}
		return nil, fieldError(o.field(key), "expected non-negative integer")
	}
	return Count(int(min(n, math.MaxInt))), nil
}

// value decodes an opaque value. Absent keys yield {} unless required.
func (o *object) value(key string, required, mapping bool) (Value, error) {
	raw, ok := o.take(key)
	if !ok {
		if required {
			return Value{}, fieldError(o.field(key), "required field missing")
		}
		return EmptyObject(), nil
	}
	v, err := ParseValue(raw)
	if err != nil {
		return Value{}, fieldError(o.field(key), "invalid JSON value")
	}
	if mapping && !v.IsObject() {
		return Value{}, fieldError(o.field(key), "expected object")
	}
	return v, nil
}

// rest returns the keys not consumed so far as an object, or null when
// there are none.
func (o *object) rest() (Value, error) {
	extra := make(map[string]json.RawMessage)
	for k, raw := range o.fields {
		if !o.seen[k] {
			extra[k] = raw
		}
	}
	if len(extra) == 0 {
		return Value{}, nil
	}
	data, err := marshalNoEscape(extra)
	if err != nil {
		return Value{}, fieldError(o.path, err.Error())
	}
	return ParseValue(data)
}

func decodeNotebook(data []byte) (*Notebook, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, syntaxError(data, err)
	}
	if fields == nil {
		return nil, fieldError("", "expected object")
	}
	top := &object{fields: fields, seen: make(map[string]bool, len(fields))}

	nb := &Notebook{}
	var err error
	if nb.Format, err = top.small("nbformat"); err != nil {
		return nil, err
	}
	if nb.FormatMinor, err = top.small("nbformat_minor"); err != nil {
		return nil, err
	}

	metaRaw, err := top.require("metadata")
	if err != nil {
		return nil, err
	}
	if nb.Metadata, err = decodeMetadata(metaRaw); err != nil {
		return nil, err
	}

	cellsRaw, err := top.require("cells")
	if err != nil {
		return nil, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(cellsRaw, &items); err != nil || isNull(cellsRaw) {
		return nil, fieldError("cells", "expected array")
	}
	nb.cells = make([]Cell, 0, len(items))
	for i, raw := range items {
		c, err := decodeCell(raw, fmt.Sprintf("cells[%d]", i))
		if err != nil {
			return nil, err
		}
		nb.cells = append(nb.cells, c)
	}

	if nb.Extra, err = top.rest(); err != nil {
		return nil, err
	}
	return nb, nil
}

func decodeMetadata(raw json.RawMessage) (Metadata, error) {
	var m Metadata
	o, err := decodeObject(raw, "metadata")
	if err != nil {
		return m, err
	}

	if ksRaw, ok := o.take("kernelspec"); ok && !isNull(ksRaw) {
		ko, err := decodeObject(ksRaw, "metadata.kernelspec")
		if err != nil {
			return m, err
		}
		ks := &Kernelspec{}
		if ks.Name, err = ko.str("name"); err != nil {
			return m, err
		}
		if ks.DisplayName, err = ko.str("display_name"); err != nil {
			return m, err
		}
		if ks.Extra, err = ko.rest(); err != nil {
			return m, err
		}
		m.Kernelspec = ks
	}

	if liRaw, ok := o.take("language_info"); ok && !isNull(liRaw) {
		lo, err := decodeObject(liRaw, "metadata.language_info")
		if err != nil {
			return m, err
		}
		li := &LanguageInfo{}
		if li.Name, err = lo.str("name"); err != nil {
			return m, err
		}
		if li.Version, err = lo.optStr("version"); err != nil {
			return m, err
		}
		if li.MIMEType, err = lo.optStr("mimetype"); err != nil {
			return m, err
		}
		if li.FileExtension, err = lo.optStr("file_extension"); err != nil {
			return m, err
		}
		if li.Extra, err = lo.rest(); err != nil {
			return m, err
		}
		m.LanguageInfo = li
	}

	m.Extra, err = o.rest()
	return m, err
}

func decodeCell(raw json.RawMessage, path string) (Cell, error) {
	o, err := decodeObject(raw, path)
	if err != nil {
		return nil, err
	}
	tag, err := o.str("cell_type")
	if err != nil {
		return nil, err
	}
	kind, ok := ParseCellType(tag)
	if !ok {
		return nil, fieldError(o.field("cell_type"), fmt.Sprintf("unknown cell type %q", tag))
	}

	var common CellCommon
	if common.Source, err = o.lines("source"); err != nil {
		return nil, err
	}
	if common.Metadata, err = o.value("metadata", false, false); err != nil {
		return nil, err
	}

	switch kind {
	case CellCode:
		cell := &CodeCell{}
		if cell.ExecutionCount, err = o.count("execution_count", true); err != nil {
			return nil, err
		}
		outRaw, err := o.require("outputs")
		if err != nil {
			return nil, err
		}
		var items []json.RawMessage
		if err := json.Unmarshal(outRaw, &items); err != nil || isNull(outRaw) {
			return nil, fieldError(o.field("outputs"), "expected array")
		}
		for i, item := range items {
			out, err := decodeOutput(item, fmt.Sprintf("%s.outputs[%d]", path, i))
			if err != nil {
				return nil, err
			}
			cell.Outputs = append(cell.Outputs, out)
		}
		if common.Extra, err = o.rest(); err != nil {
			return nil, err
		}
		cell.CellCommon = common
		return cell, nil
	case CellMarkdown:
		if common.Extra, err = o.rest(); err != nil {
			return nil, err
		}
		return &MarkdownCell{CellCommon: common}, nil
	default:
		if common.Extra, err = o.rest(); err != nil {
			return nil, err
		}
		return &RawCell{CellCommon: common}, nil
	}
}

func decodeOutput(raw json.RawMessage, path string) (Output, error) {
	o, err := decodeObject(raw, path)
	if err != nil {
		return nil, err
	}
	tag, err := o.str("output_type")
	if err != nil {
		return nil, err
	}
	kind, ok := ParseOutputType(tag)
	if !ok {
		return nil, fieldError(o.field("output_type"), fmt.Sprintf("unknown output type %q", tag))
	}

	switch kind {
	case OutputStream:
		out := &StreamOutput{}
		if out.Name, err = o.str("name"); err != nil {
			return nil, err
		}
		if out.Name != StreamStdout && out.Name != StreamStderr {
			return nil, fieldError(o.field("name"), fmt.Sprintf("unknown stream %q", out.Name))
		}
		if out.Text, err = o.lines("text"); err != nil {
			return nil, err
		}
		out.Extra, err = o.rest()
		return out, err
	case OutputExecuteResult:
		out := &ExecuteResult{}
		count, err := o.count("execution_count", false)
		if err != nil {
			return nil, err
		}
		out.ExecutionCount = *count
		if out.Data, err = o.value("data", true, true); err != nil {
			return nil, err
		}
		if out.Metadata, err = o.value("metadata", false, false); err != nil {
			return nil, err
		}
		out.Extra, err = o.rest()
		return out, err
	case OutputDisplayData:
		out := &DisplayData{}
		if out.Data, err = o.value("data", true, true); err != nil {
			return nil, err
		}
		if out.Metadata, err = o.value("metadata", false, false); err != nil {
			return nil, err
		}
		out.Extra, err = o.rest()
		return out, err
	default:
		out := &ErrorOutput{}
		if out.EName, err = o.str("ename"); err != nil {
			return nil, err
		}
		if out.EValue, err = o.str("evalue"); err != nil {
			return nil, err
		}
		if out.Traceback, err = o.lines("traceback"); err != nil {
			return nil, err
		}
		out.Extra, err = o.rest()
		return out, err
	}
}

func encodeMetadata(m Metadata) map[string]any {
	doc := make(map[string]any)
	if ks := m.Kernelspec; ks != nil {
		k := map[string]any{"name": ks.Name, "display_name": ks.DisplayName}
		mergeExtra(k, ks.Extra)
		doc["kernelspec"] = k
	}
	if li := m.LanguageInfo; li != nil {
		l := map[string]any{"name": li.Name}
		if li.Version != nil {
			l["version"] = *li.Version
		}
		if li.MIMEType != nil {
			l["mimetype"] = *li.MIMEType
		}
		if li.FileExtension != nil {
			l["file_extension"] = *li.FileExtension
		}
		mergeExtra(l, li.Extra)
		doc["language_info"] = l
	}
	mergeExtra(doc, m.Extra)
	return doc
}

func encodeCells(cells []Cell) []any {
	out := make([]any, 0, len(cells))
	for _, c := range cells {
		common := c.Common()
		doc := map[string]any{
			"cell_type": c.Type().String(),
			"source":    nonNil(common.Source),
			"metadata":  common.Metadata,
		}
		if cc, ok := c.(*CodeCell); ok {
			doc["execution_count"] = cc.ExecutionCount
			outputs := make([]any, 0, len(cc.Outputs))
			for _, o := range cc.Outputs {
				outputs = append(outputs, encodeOutput(o))
			}
			doc["outputs"] = outputs
		}
		mergeExtra(doc, common.Extra)
		out = append(out, doc)
	}
	return out
}

func encodeOutput(o Output) map[string]any {
	doc := map[string]any{"output_type": o.Type().String()}
	switch o := o.(type) {
	case *StreamOutput:
		doc["name"] = o.Name
		doc["text"] = nonNil(o.Text)
	case *ExecuteResult:
		doc["execution_count"] = o.ExecutionCount
		doc["data"] = o.Data
		doc["metadata"] = o.Metadata
	case *DisplayData:
		doc["data"] = o.Data
		doc["metadata"] = o.Metadata
	case *ErrorOutput:
		doc["ename"] = o.EName
		doc["evalue"] = o.EValue
		doc["traceback"] = nonNil(o.Traceback)
	}
	mergeExtra(doc, o.Fields())
	return doc
}

// mergeExtra copies the members of extra into doc. Modeled keys win.
func mergeExtra(doc map[string]any, extra Value) {
	if !extra.IsObject() {
		return
	}
	gjson.Parse(extra.String()).ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		if _, ok := doc[key]; !ok {
			doc[key] = json.RawMessage(v.Raw)
		}
		return true
	})
}

func nonNil(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func fieldError(field, msg string) *ParseError {
	return &ParseError{Field: field, Message: msg}
}

// syntaxError converts a json decoding error into a ParseError with a
// line/column position when one is available.
func syntaxError(data []byte, err error) *ParseError {
	var offset int64 = -1
	var serr *json.SyntaxError
	var terr *json.UnmarshalTypeError
	msg := err.Error()
	switch {
	case errors.As(err, &serr):
		offset = serr.Offset
	case errors.As(err, &terr):
		offset = terr.Offset
		msg = "expected object"
	}
	perr := &ParseError{Message: msg, Err: err}
	if offset >= 0 {
		perr.Line, perr.Column = position(data, int(offset))
	}
	return perr
}

func position(data []byte, offset int) (line, col int) {
	if offset > len(data) {
		offset = len(data)
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte("\n")) + 1
	col = offset - bytes.LastIndexByte(prefix, '\n')
	return line, col
}

// ExtraKeys lists the unrecognized top-level and metadata keys of n.
func ExtraKeys(n *Notebook) []string {
	out := append([]string(nil), n.Extra.Keys()...)
	for _, k := range n.Metadata.Extra.Keys() {
		out = append(out, "metadata."+k)
	}
	return out
}
