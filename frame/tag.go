package frame

// Tag is the single byte following a frame's payload, identifying the
// value kind of the payload.
type Tag byte

const (
	TagString Tag = ','
	TagInt    Tag = '#'
	TagFloat  Tag = '^'
	TagBool   Tag = '!'
	TagNull   Tag = '~'
	TagList   Tag = ']'
	TagDict   Tag = '}'
)

func (t Tag) Valid() bool {
	switch t {
	case TagString, TagInt, TagFloat, TagBool, TagNull, TagList, TagDict:
		return true
	default:
		return false
	}
}

func (t Tag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	case TagBool:
		return "bool"
	case TagNull:
		return "null"
	case TagList:
		return "list"
	case TagDict:
		return "dict"
	default:
		return "<unknown tag>"
	}
}

func Tags() []Tag {
	return []Tag{TagString, TagInt, TagFloat, TagBool, TagNull, TagList, TagDict}
}
