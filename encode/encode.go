package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"

	"github.com/treenav/go-treenav/ir"
)

type EncState struct {
	depth   int
	indent  int
	compact bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if !es.compact {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	default:
		return encodeScalar(node, w, es)
	}
}

func encodeScalar(node *ir.Node, w io.Writer, es *EncState) error {
	var s string
	switch node.Type {
	case ir.NullType:
		s = "null"
	case ir.BoolType:
		s = strconv.FormatBool(node.Bool)
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			s = strconv.FormatInt(*node.Int64, 10)
		case node.Float64 != nil:
			s = strconv.FormatFloat(*node.Float64, 'g', -1, 64)
		default:
			s = "0"
		}
	case ir.StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		s = string(d)
	default:
		return fmt.Errorf("cannot encode %s", node.Type)
	}
	_, err := io.WriteString(w, es.color(node.Type, ValueColor, s))
	return err
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		_, err := io.WriteString(w, es.color(ir.ObjectType, SepColor, "{}"))
		return err
	}
	if _, err := io.WriteString(w, es.color(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i := range node.Fields {
		if i > 0 {
			if _, err := io.WriteString(w, es.color(ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := es.newline(w); err != nil {
			return err
		}
		d, err := json.Marshal(node.Fields[i].String)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, es.color(ir.ObjectType, FieldColor, string(d))); err != nil {
			return err
		}
		sep := ": "
		if es.compact {
			sep = ":"
		}
		if _, err := io.WriteString(w, es.color(ir.ObjectType, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.newline(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, es.color(ir.ObjectType, SepColor, "}"))
	return err
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		_, err := io.WriteString(w, es.color(ir.ArrayType, SepColor, "[]"))
		return err
	}
	if _, err := io.WriteString(w, es.color(ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if _, err := io.WriteString(w, es.color(ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := es.newline(w); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.newline(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, es.color(ir.ArrayType, SepColor, "]"))
	return err
}

func (es *EncState) newline(w io.Writer) error {
	if es.compact {
		return nil
	}
	_, err := io.WriteString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
	return err
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}
