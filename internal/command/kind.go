package command

// Kind identifies a command.
type Kind uint8

const (
	// None is the zero Kind; it does nothing.
	None Kind = iota

	// Session and panes.
	Quit
	ToggleFilePicker
	ToggleOutline
	ToggleSettings
	ToggleSymbols
	ToggleVariables
	ToggleSearch
	ToggleLeftPane
	ToggleRightPane
	ToggleTabline
	ToggleStatusBar
	ToggleDiff

	// Settings.
	ToggleLineNumbers
	ToggleWordWrap
	ToggleAutoIndent
	ToggleSyntaxHighlighting
	ToggleAutoComplete
	ToggleAutoCloseBrackets
	ToggleAutoCloseQuotes
	SetOption

	// Files.
	OpenFile
	SaveFile
	SaveFileAs
	SaveAndQuit
	CloseFile
	NewFile

	// Primitives.
	Undo
	Redo
	Navigate
	Repeat
	Input

	// Pane focus.
	ToLeftPane
	ToRightPane
	ToUpperPane
	ToLowerPane

	// Tabs.
	ToNextTab
	ToPreviousTab
	ToTab

	Search
	Replace
	Substitute

	// Text editing.
	DeleteText
	DeletePreviousChar
	DeleteLine
	DeleteWord
	DeletePreviousWord
	DeleteToEndOfLine
	DeleteToStartOfLine
	DeleteToEndOfFile
	DeleteToStartOfFile
	Copy
	Cut
	Paste
	Concatenate

	// Selections.
	Skip
	Deselect

	// Cells.
	InsertCellAbove
	InsertCellBelow
	DeleteCell
	ToggleCollapsed
	ToggleBookmark

	// Mode switches.
	SwitchToNormalMode
	SwitchToInsertMode
	SwitchToVisualMode
	SwitchToVisualLineMode
	SwitchToVisualBlockMode
	SwitchToReplaceMode
	SwitchToCommandMode
	SwitchToUICursorMode

	// Command line.
	ExecuteCommandLine
	CompleteCommandLine

	kindCount
)

// argKind describes the argument a Kind carries.
type argKind uint8

const (
	argNone argKind = iota
	argMotion
	argText
	argOptText
	argNumber
	argCell
	argRepeat
	argOption
	argSubstitute
)

var kindInfo = [kindCount]struct {
	name string
	arg  argKind
}{
	None:                     {"none", argNone},
	Quit:                     {"quit", argNone},
	ToggleFilePicker:         {"toggle-file-picker", argNone},
	ToggleOutline:            {"toggle-outline", argNone},
	ToggleSettings:           {"toggle-settings", argNone},
	ToggleSymbols:            {"toggle-symbols", argNone},
	ToggleVariables:          {"toggle-variables", argNone},
	ToggleSearch:             {"toggle-search", argNone},
	ToggleLeftPane:           {"toggle-left-pane", argNone},
	ToggleRightPane:          {"toggle-right-pane", argNone},
	ToggleTabline:            {"toggle-tabline", argNone},
	ToggleStatusBar:          {"toggle-status-bar", argNone},
	ToggleDiff:               {"toggle-diff", argNone},
	ToggleLineNumbers:        {"toggle-line-numbers", argNone},
	ToggleWordWrap:           {"toggle-word-wrap", argNone},
	ToggleAutoIndent:         {"toggle-auto-indent", argNone},
	ToggleSyntaxHighlighting: {"toggle-syntax-highlighting", argNone},
	ToggleAutoComplete:       {"toggle-auto-complete", argNone},
	ToggleAutoCloseBrackets:  {"toggle-auto-close-brackets", argNone},
	ToggleAutoCloseQuotes:    {"toggle-auto-close-quotes", argNone},
	SetOption:                {"set-option", argOption},
	OpenFile:                 {"open-file", argText},
	SaveFile:                 {"save-file", argNone},
	SaveFileAs:               {"save-file-as", argText},
	SaveAndQuit:              {"save-and-quit", argNone},
	CloseFile:                {"close-file", argNone},
	NewFile:                  {"new-file", argNone},
	Undo:                     {"undo", argNone},
	Redo:                     {"redo", argNone},
	Navigate:                 {"navigate", argMotion},
	Repeat:                   {"repeat", argRepeat},
	Input:                    {"input", argText},
	ToLeftPane:               {"to-left-pane", argNone},
	ToRightPane:              {"to-right-pane", argNone},
	ToUpperPane:              {"to-upper-pane", argNone},
	ToLowerPane:              {"to-lower-pane", argNone},
	ToNextTab:                {"to-next-tab", argNone},
	ToPreviousTab:            {"to-previous-tab", argNone},
	ToTab:                    {"to-tab", argNumber},
	Search:                   {"search", argText},
	Replace:                  {"replace", argText},
	Substitute:               {"substitute", argSubstitute},
	DeleteText:               {"delete-text", argNone},
	DeletePreviousChar:       {"delete-previous-char", argNone},
	DeleteLine:               {"delete-line", argNone},
	DeleteWord:               {"delete-word", argNone},
	DeletePreviousWord:       {"delete-previous-word", argNone},
	DeleteToEndOfLine:        {"delete-to-end-of-line", argNone},
	DeleteToStartOfLine:      {"delete-to-start-of-line", argNone},
	DeleteToEndOfFile:        {"delete-to-end-of-file", argNone},
	DeleteToStartOfFile:      {"delete-to-start-of-file", argNone},
	Copy:                     {"copy", argNone},
	Cut:                      {"cut", argNone},
	Paste:                    {"paste", argNone},
	Concatenate:              {"concatenate", argNone},
	Skip:                     {"skip", argNone},
	Deselect:                 {"deselect", argNone},
	InsertCellAbove:          {"insert-cell-above", argCell},
	InsertCellBelow:          {"insert-cell-below", argCell},
	DeleteCell:               {"delete-cell", argNone},
	ToggleCollapsed:          {"toggle-collapsed", argNone},
	ToggleBookmark:           {"toggle-bookmark", argNone},
	SwitchToNormalMode:       {"switch-to-normal-mode", argNone},
	SwitchToInsertMode:       {"switch-to-insert-mode", argNone},
	SwitchToVisualMode:       {"switch-to-visual-mode", argNone},
	SwitchToVisualLineMode:   {"switch-to-visual-line-mode", argNone},
	SwitchToVisualBlockMode:  {"switch-to-visual-block-mode", argNone},
	SwitchToReplaceMode:      {"switch-to-replace-mode", argNone},
	SwitchToCommandMode:      {"switch-to-command-mode", argOptText},
	SwitchToUICursorMode:     {"switch-to-ui-cursor-mode", argNone},
	ExecuteCommandLine:       {"execute-command-line", argNone},
	CompleteCommandLine:      {"complete-command-line", argNone},
}

// Kinds returns every Kind except None, in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := None + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// String returns the kebab-case name of k.
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindInfo[k].name
}

// KindFromName returns the Kind with the given kebab-case name.
func KindFromName(name string) (Kind, bool) {
	for k := None + 1; k < kindCount; k++ {
		if kindInfo[k].name == name {
			return k, true
		}
	}
	return None, false
}

// Mutating reports whether k changes the focused document when applied.
// Input is listed because it edits text outside Command mode.
func (k Kind) Mutating() bool {
	switch k {
	case Input, Replace, Substitute, Paste, Cut, Concatenate, Undo, Redo,
		DeleteText, DeletePreviousChar, DeleteLine, DeleteWord, DeletePreviousWord,
		DeleteToEndOfLine, DeleteToStartOfLine, DeleteToEndOfFile, DeleteToStartOfFile,
		InsertCellAbove, InsertCellBelow, DeleteCell, ToggleCollapsed:
		return true
	}
	return false
}
