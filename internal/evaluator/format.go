package evaluator

import (
	"strconv"
	"strings"
)

// Render formats a value for print. Top-level strings render raw; strings
// nested in collections render quoted. Non-empty collections span multiple
// lines with four-space indentation per level.
func Render(obj Object) string {
	if s, ok := obj.(*Str); ok {
		return s.Value
	}
	return renderNested(obj, 0)
}

func renderNested(obj Object, depth int) string {
	switch v := obj.(type) {
	case *Integer:
		return strconv.FormatInt(v.Value, 10)
	case *Boolean:
		return strconv.FormatBool(v.Value)
	case *Str:
		return strconv.Quote(v.Value)
	case *Absent:
		return "<absent>"
	case *Builtin:
		return "<built-in function '" + v.Name + "'>"
	case *Function:
		return v.Inspect()
	case *Process:
		return "<process '" + v.Program + "' code=" + strconv.FormatInt(v.Code(), 10) + ">"
	case *List:
		if len(v.Elements) == 0 {
			return "[]"
		}
		var out strings.Builder
		out.WriteString("[\n")
		for _, el := range v.Elements {
			out.WriteString(indent(depth + 1))
			out.WriteString(renderNested(el, depth+1))
			out.WriteString(",\n")
		}
		out.WriteString(indent(depth))
		out.WriteString("]")
		return out.String()
	case *Map:
		if v.Len() == 0 {
			return "{}"
		}
		var out strings.Builder
		out.WriteString("{\n")
		for _, key := range v.Keys() {
			value, _ := v.Get(key)
			out.WriteString(indent(depth + 1))
			out.WriteString(strconv.Quote(key))
			out.WriteString(": ")
			out.WriteString(renderNested(value, depth+1))
			out.WriteString(",\n")
		}
		out.WriteString(indent(depth))
		out.WriteString("}")
		return out.String()
	}
	return obj.Inspect()
}

func indent(depth int) string {
	return strings.Repeat("    ", depth)
}
