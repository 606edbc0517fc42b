package evaluator

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/grapheme"
)

// defaultEnvironment binds the `std` record every program sees.
func defaultEnvironment() *environment {
	std := recordValue(map[string]Value{
		"string":    stringNamespace(),
		"to_string": builtin1("std.to_string", builtinToString),
		"typeof":    builtin1("std.typeof", builtinTypeof),
	})
	var root *environment
	return root.bind("std", std)
}

func stringNamespace() Value {
	return recordValue(map[string]Value{
		"length":     builtin1("std.string.length", builtinStringLength),
		"characters": builtin1("std.string.characters", builtinStringCharacters),
		"substring":  builtin1("std.string.substring", builtinStringSubstring),
		"uppercase":  builtin1("std.string.uppercase", builtinStringUppercase),
		"lowercase":  builtin1("std.string.lowercase", builtinStringLowercase),
		"trim":       builtin1("std.string.trim", builtinStringTrim),
		"from":       builtin1("std.string.from", builtinToString),
	})
}

func builtin1(name string, fn func(ev *Evaluator, at ast.Idx, arg Value) (Value, error)) Value {
	return builtinValue(&builtin{name: name, fn: fn})
}

func argString(name string, at ast.Idx, arg Value) (string, error) {
	s, ok := arg.AsString()
	if !ok {
		return "", errorf(at, at+1, "%s expects a String argument, got %s", name, arg.TypeName())
	}
	return s, nil
}

func builtinStringLength(_ *Evaluator, at ast.Idx, arg Value) (Value, error) {
	s, err := argString("std.string.length", at, arg)
	if err != nil {
		return nullValue, err
	}
	return numberValue(float64(grapheme.Length(s))), nil
}

func builtinStringCharacters(_ *Evaluator, at ast.Idx, arg Value) (Value, error) {
	s, err := argString("std.string.characters", at, arg)
	if err != nil {
		return nullValue, err
	}
	clusters := grapheme.Clusters(s)
	elems := make([]Value, len(clusters))
	for i, c := range clusters {
		elems[i] = stringValue(c)
	}
	return arrayValue(elems), nil
}

// builtinStringSubstring is curried: substring start end s.
func builtinStringSubstring(_ *Evaluator, at ast.Idx, arg Value) (Value, error) {
	start, err := argIndex("std.string.substring", at, arg)
	if err != nil {
		return nullValue, err
	}
	return builtin1("std.string.substring", func(_ *Evaluator, at ast.Idx, arg Value) (Value, error) {
		end, err := argIndex("std.string.substring", at, arg)
		if err != nil {
			return nullValue, err
		}
		return builtin1("std.string.substring", func(_ *Evaluator, at ast.Idx, arg Value) (Value, error) {
			s, err := argString("std.string.substring", at, arg)
			if err != nil {
				return nullValue, err
			}
			out, ok := grapheme.Slice(s, start, end)
			if !ok {
				return nullValue, errorf(at, at+1,
					"std.string.substring range [%d, %d) is invalid for a string of %d characters",
					start, end, grapheme.Length(s))
			}
			return stringValue(out), nil
		}), nil
	}), nil
}

func argIndex(name string, at ast.Idx, arg Value) (int, error) {
	x, ok := arg.AsNumber()
	if !ok {
		return 0, errorf(at, at+1, "%s expects a Number index, got %s", name, arg.TypeName())
	}
	i := int(x)
	if float64(i) != x {
		return 0, errorf(at, at+1, "%s index must be an integer, got %s", name, formatNumber(x))
	}
	return i, nil
}

func builtinStringUppercase(_ *Evaluator, at ast.Idx, arg Value) (Value, error) {
	s, err := argString("std.string.uppercase", at, arg)
	if err != nil {
		return nullValue, err
	}
	// cases.Caser carries state, so build one per call rather than
	// sharing a package-level instance across goroutines.
	return stringValue(cases.Upper(language.Und).String(s)), nil
}

func builtinStringLowercase(_ *Evaluator, at ast.Idx, arg Value) (Value, error) {
	s, err := argString("std.string.lowercase", at, arg)
	if err != nil {
		return nullValue, err
	}
	return stringValue(cases.Lower(language.Und).String(s)), nil
}

func builtinStringTrim(_ *Evaluator, at ast.Idx, arg Value) (Value, error) {
	s, err := argString("std.string.trim", at, arg)
	if err != nil {
		return nullValue, err
	}
	return stringValue(strings.TrimSpace(s)), nil
}

func builtinToString(_ *Evaluator, at ast.Idx, arg Value) (Value, error) {
	s, err := ToDisplayString(arg, at, at+1)
	if err != nil {
		return nullValue, err
	}
	return stringValue(s), nil
}

func builtinTypeof(_ *Evaluator, _ ast.Idx, arg Value) (Value, error) {
	return stringValue(arg.TypeName()), nil
}
