package parse

import (
	"errors"
	"fmt"

	"github.com/tnet-format/go-tnet/debug"
	"github.com/tnet-format/go-tnet/frame"
	"github.com/tnet-format/go-tnet/ir"
)

// Parse decodes one complete tnetstring value from d. Bytes remaining
// after the top-level frame are an ErrTrailing. Errors report the
// first problem in scanning order: outer frame before inner,
// left-to-right within aggregates.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{opts: pOpts}
	fr, err := frame.Parse(d, 0)
	if err != nil {
		return nil, err
	}
	res, err := p.value(fr, 0)
	if err != nil {
		return nil, err
	}
	if fr.End != len(d) {
		return nil, fmt.Errorf("%w: %d bytes remain", ErrTrailing, len(d)-fr.End)
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes:\n%s", len(d), res)
	}
	return res, nil
}

type parser struct {
	opts *parseOpts
	size int
}

// account charges n payload bytes against the configured size bound.
func (p *parser) account(n int) error {
	if p.opts.maxSize <= 0 {
		return nil
	}
	p.size += n
	if p.size > p.opts.maxSize {
		return fmt.Errorf("%w (%d bytes)", ErrSize, p.opts.maxSize)
	}
	return nil
}

func (p *parser) value(fr frame.Frame, depth int) (*ir.Node, error) {
	if err := p.account(fr.Len); err != nil {
		return nil, err
	}
	switch fr.Tag {
	case frame.TagString:
		return ir.FromBytes(fr.Payload), nil
	case frame.TagInt:
		v, err := frame.ParseInt(fr.Payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrType, err)
		}
		return ir.FromInt(v), nil
	case frame.TagFloat:
		f, err := frame.ParseFloat(fr.Payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrType, err)
		}
		return ir.FromFloat(f), nil
	case frame.TagBool:
		switch string(fr.Payload) {
		case "true":
			return ir.FromBool(true), nil
		case "false":
			return ir.FromBool(false), nil
		}
		return nil, fmt.Errorf("%w: bad bool payload %q", ErrType, fr.Payload)
	case frame.TagNull:
		if fr.Len != 0 {
			return nil, fmt.Errorf("%w: null payload must be empty, got %d bytes", ErrType, fr.Len)
		}
		return ir.Null(), nil
	case frame.TagList:
		return p.list(fr.Payload, depth+1)
	case frame.TagDict:
		return p.dict(fr.Payload, depth+1)
	default:
		// frame.Parse admits only valid tags
		panic("tag")
	}
}

func (p *parser) list(payload []byte, depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrDepth, p.opts.maxDepth)
	}
	res := &ir.Node{Type: ir.ArrayType}
	off := 0
	for off < len(payload) {
		fr, err := frame.Parse(payload, off)
		if err != nil {
			return nil, childErr(err, "list")
		}
		child, err := p.value(fr, depth)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, child)
		off = fr.End
	}
	return res, nil
}

func (p *parser) dict(payload []byte, depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrDepth, p.opts.maxDepth)
	}
	res := &ir.Node{Type: ir.ObjectType}
	off := 0
	for off < len(payload) {
		keyFr, err := frame.Parse(payload, off)
		if err != nil {
			return nil, childErr(err, "dict")
		}
		if keyFr.Tag != frame.TagString {
			return nil, fmt.Errorf("%w: dict key has tag %s, want string", ErrStructure, keyFr.Tag)
		}
		if err := p.account(keyFr.Len); err != nil {
			return nil, err
		}
		off = keyFr.End
		if off >= len(payload) {
			return nil, fmt.Errorf("%w: dict key %q has no value", ErrStructure, keyFr.Payload)
		}
		valFr, err := frame.Parse(payload, off)
		if err != nil {
			return nil, childErr(err, "dict")
		}
		val, err := p.value(valFr, depth)
		if err != nil {
			return nil, err
		}
		res.Fields = append(res.Fields, ir.FromBytes(keyFr.Payload))
		res.Values = append(res.Values, val)
		off = valFr.End
	}
	return res, nil
}

// childErr maps truncation inside an aggregate payload to a structural
// error: the child frame claims bytes beyond its parent's bound.
func childErr(err error, in string) error {
	if errors.Is(err, frame.ErrTruncated) {
		return fmt.Errorf("%w: child frame overruns %s payload: %w", ErrStructure, in, err)
	}
	return err
}
