package journey

import "strings"

// noteColor is the font color of node notes.
const noteColor = "#555555"

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// FormatLabel returns the Graphviz HTML-label body for a node.
//
// Without a note the label is returned unchanged (apart from escaping of
// &, < and >). With a note, the note is appended on its own line in small
// grey italics; newlines inside the note become line breaks.
// The result goes between the < > delimiters of a DOT HTML label.
func FormatLabel(label, note string) string {
	if note == "" {
		return htmlEscaper.Replace(label)
	}
	lines := strings.Split(note, "\n")
	for i, l := range lines {
		lines[i] = htmlEscaper.Replace(l)
	}
	return htmlEscaper.Replace(label) +
		`<BR/><FONT POINT-SIZE="8" COLOR="` + noteColor + `"><I>` +
		strings.Join(lines, "<BR/>") +
		`</I></FONT>`
}
