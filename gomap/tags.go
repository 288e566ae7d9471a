package gomap

import "strings"

// fieldTag is the parsed form of a `tnet:"..."` struct tag. Tokens are
// space separated: field=NAME renames the wire field, "optional" omits
// zero values on marshal and tolerates absence on unmarshal, and a
// bare "-" skips the field entirely.
type fieldTag struct {
	name     string
	optional bool
	skip     bool
}

func parseFieldTag(tag string) fieldTag {
	if tag == "-" {
		return fieldTag{skip: true}
	}
	ft := fieldTag{}
	for _, tok := range strings.Fields(tag) {
		switch {
		case strings.HasPrefix(tok, "field="):
			ft.name = strings.TrimPrefix(tok, "field=")
		case tok == "optional":
			ft.optional = true
		}
	}
	return ft
}
