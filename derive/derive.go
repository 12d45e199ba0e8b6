// Package derive builds an elicitation plan for a struct type by
// reflection: each exported field becomes one prompt (or, for
// containers and nested structs, a sub-plan), asked in declaration
// order. Field descriptions and enums are read from the type's JSON
// schema projection, so `jsonschema:"description=...,enum=..."` tags
// shape the prompts.
package derive

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	js "github.com/invopop/jsonschema"

	"github.com/promptwire/elicit"
)

// planCache memoizes one plan per struct type. Plans are immutable
// after construction.
var planCache sync.Map // map[reflect.Type]*structPlan

type structPlan struct {
	fields []fieldStep
}

type fieldStep struct {
	name  string
	index []int
	shape string
	run   func(ctx context.Context, tr elicit.Transport, target reflect.Value) error
}

// Elicit walks T's fields in declaration order, prompting for each over
// tr, and returns the assembled value. Any failing field fails the
// whole elicitation; no partially filled struct is returned.
func Elicit[T any](ctx context.Context, tr elicit.Transport) (*T, error) {
	var zero T
	t := reflect.TypeOf(zero)
	st := t
	depth := 0
	for st != nil && st.Kind() == reflect.Pointer {
		st = st.Elem()
		depth++
	}
	plan, err := planFor(st)
	if err != nil {
		return nil, err
	}
	filled := reflect.New(st)
	if err := plan.run(ctx, tr, filled.Elem()); err != nil {
		return nil, err
	}
	// Rewrap to T's pointer depth so a pointer target type yields an
	// allocated value rather than a nil to write through.
	v := filled.Elem()
	for i := 0; i < depth; i++ {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		v = p
	}
	out := reflect.New(t)
	out.Elem().Set(v)
	return out.Interface().(*T), nil
}

// Describe renders T's elicitation plan as text, one field per line.
// It exists so a test can pin the derived shape of a type.
func Describe[T any]() (string, error) {
	var zero T
	plan, err := planFor(reflect.TypeOf(zero))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, f := range plan.fields {
		fmt.Fprintf(&b, "%s: %s\n", f.name, f.shape)
	}
	return b.String(), nil
}

func (p *structPlan) run(ctx context.Context, tr elicit.Transport, target reflect.Value) error {
	for _, f := range p.fields {
		if err := f.run(ctx, tr, target.FieldByIndex(f.index)); err != nil {
			return err
		}
	}
	return nil
}

// propertyMeta is what the schema projection contributes per field.
type propertyMeta struct {
	description string
	enum        []string
}

func planFor(t reflect.Type) (*structPlan, error) {
	if t == nil {
		return nil, fmt.Errorf("derive: type must be a struct, got nil interface")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("derive: type must be a struct, got %s", t.Kind())
	}
	if v, ok := planCache.Load(t); ok {
		return v.(*structPlan), nil
	}

	metas, order, err := projectProperties(t)
	if err != nil {
		return nil, err
	}

	fieldByName := map[string]reflect.StructField{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name := parseJSONName(f)
		if name == "-" {
			continue
		}
		if name == "" {
			name = lowerFirstExported(f.Name)
		}
		fieldByName[name] = f
	}

	plan := &structPlan{}
	for _, name := range order {
		sf, ok := fieldByName[name]
		if !ok {
			return nil, fmt.Errorf("derive: property %s not matched to a struct field", name)
		}
		meta := metas[name]
		prompt := meta.description
		if prompt == "" {
			prompt = name + "?"
		}
		run, shape, err := buildStep(sf.Type, name, prompt, meta.enum)
		if err != nil {
			return nil, err
		}
		plan.fields = append(plan.fields, fieldStep{name: name, index: sf.Index, shape: shape, run: run})
	}
	if len(plan.fields) == 0 {
		return nil, fmt.Errorf("derive: struct %s has no exported fields", t)
	}

	actual, _ := planCache.LoadOrStore(t, plan)
	return actual.(*structPlan), nil
}

// projectProperties reflects t into a JSON schema and pulls the
// per-property description and enum, preserving declaration order.
func projectProperties(t reflect.Type) (map[string]propertyMeta, []string, error) {
	r := &js.Reflector{DoNotReference: true, ExpandedStruct: true}
	root := r.Reflect(reflect.New(t).Interface())
	if root == nil || root.Type != "object" {
		return nil, nil, fmt.Errorf("derive: projected root of %s is not an object", t)
	}
	metas := map[string]propertyMeta{}
	var order []string
	if root.Properties != nil {
		for el := root.Properties.Oldest(); el != nil; el = el.Next() {
			name := el.Key
			v := el.Value
			pm := propertyMeta{}
			if v != nil {
				pm.description = v.Description
				for _, ev := range v.Enum {
					sv, ok := ev.(string)
					if !ok {
						return nil, nil, fmt.Errorf("derive: non-string enum value on field %s", name)
					}
					pm.enum = append(pm.enum, sv)
				}
			}
			metas[name] = pm
			order = append(order, name)
		}
	}
	return metas, order, nil
}

type runner = func(ctx context.Context, tr elicit.Transport, target reflect.Value) error

// buildStep maps one Go type to its prompting strategy.
func buildStep(ft reflect.Type, name, prompt string, enum []string) (runner, string, error) {
	switch ft.Kind() {
	case reflect.String:
		if len(enum) > 0 {
			return enumStep(ft, prompt, enum), "select [" + strings.Join(enum, ", ") + "]", nil
		}
		return func(ctx context.Context, tr elicit.Transport, target reflect.Value) error {
			s, err := elicit.Text(prompt)(ctx, tr)
			if err != nil {
				return err
			}
			target.SetString(s)
			return nil
		}, "text", nil

	case reflect.Bool:
		return func(ctx context.Context, tr elicit.Transport, target reflect.Value) error {
			b, err := elicit.Bool(prompt)(ctx, tr)
			if err != nil {
				return err
			}
			target.SetBool(b)
			return nil
		}, "boolean", nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(ctx context.Context, tr elicit.Transport, target reflect.Value) error {
			n, err := elicit.Number[int64](prompt)(ctx, tr)
			if err != nil {
				return err
			}
			if target.OverflowInt(n) {
				return &elicit.FormatError{
					Expected: fmt.Sprintf("number fitting %s", ft),
					Received: fmt.Sprintf("%d", n),
				}
			}
			target.SetInt(n)
			return nil
		}, "number (integer)", nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(ctx context.Context, tr elicit.Transport, target reflect.Value) error {
			n, err := elicit.Number[uint64](prompt)(ctx, tr)
			if err != nil {
				return err
			}
			if target.OverflowUint(n) {
				return &elicit.FormatError{
					Expected: fmt.Sprintf("number fitting %s", ft),
					Received: fmt.Sprintf("%d", n),
				}
			}
			target.SetUint(n)
			return nil
		}, "number (integer)", nil

	case reflect.Float32, reflect.Float64:
		return func(ctx context.Context, tr elicit.Transport, target reflect.Value) error {
			f, err := elicit.Number[float64](prompt)(ctx, tr)
			if err != nil {
				return err
			}
			if target.OverflowFloat(f) {
				return &elicit.FormatError{
					Expected: fmt.Sprintf("number fitting %s", ft),
					Received: fmt.Sprintf("%v", f),
				}
			}
			target.SetFloat(f)
			return nil
		}, "number (float)", nil

	case reflect.Pointer:
		inner, shape, err := buildStep(ft.Elem(), name, prompt, enum)
		if err != nil {
			return nil, "", err
		}
		question := "Provide " + name + "?"
		return func(ctx context.Context, tr elicit.Transport, target reflect.Value) error {
			provide, err := elicit.Bool(question)(ctx, tr)
			if err != nil {
				return err
			}
			if !provide {
				return nil
			}
			target.Set(reflect.New(ft.Elem()))
			return inner(ctx, tr, target.Elem())
		}, "optional " + shape, nil

	case reflect.Slice:
		inner, shape, err := buildStep(ft.Elem(), name, prompt, nil)
		if err != nil {
			return nil, "", err
		}
		question := "Add another " + name + "?"
		return func(ctx context.Context, tr elicit.Transport, target reflect.Value) error {
			out := reflect.MakeSlice(ft, 0, 0)
			for {
				more, err := elicit.Bool(question)(ctx, tr)
				if err != nil {
					return err
				}
				if !more {
					target.Set(out)
					return nil
				}
				item := reflect.New(ft.Elem()).Elem()
				if err := inner(ctx, tr, item); err != nil {
					return err
				}
				out = reflect.Append(out, item)
			}
		}, "list of " + shape, nil

	case reflect.Array:
		inner, shape, err := buildStep(ft.Elem(), name, prompt, nil)
		if err != nil {
			return nil, "", err
		}
		n := ft.Len()
		return func(ctx context.Context, tr elicit.Transport, target reflect.Value) error {
			for i := 0; i < n; i++ {
				if err := inner(ctx, tr, target.Index(i)); err != nil {
					return err
				}
			}
			return nil
		}, fmt.Sprintf("%d x %s", n, shape), nil

	case reflect.Struct:
		sub, err := planFor(ft)
		if err != nil {
			return nil, "", err
		}
		var parts []string
		for _, f := range sub.fields {
			parts = append(parts, f.name)
		}
		return func(ctx context.Context, tr elicit.Transport, target reflect.Value) error {
			return sub.run(ctx, tr, target)
		}, "struct {" + strings.Join(parts, ", ") + "}", nil

	default:
		return nil, "", fmt.Errorf("derive: unsupported kind %s for field %s", ft.Kind(), name)
	}
}

// enumStep issues a selection over the schema enum values.
func enumStep(ft reflect.Type, prompt string, enum []string) runner {
	variants := make([]elicit.Variant[string], len(enum))
	for i, v := range enum {
		variants[i] = elicit.Variant[string]{Name: v, Func: elicit.Just(v)}
	}
	step := elicit.Select(prompt, variants...)
	return func(ctx context.Context, tr elicit.Transport, target reflect.Value) error {
		s, err := step(ctx, tr)
		if err != nil {
			return err
		}
		target.SetString(s)
		return nil
	}
}

// parseJSONName extracts the property name from a json tag, ignoring
// tag options.
func parseJSONName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return ""
	}
	return strings.Split(tag, ",")[0]
}

func lowerFirstExported(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
