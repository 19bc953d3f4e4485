// Copyright 2022 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package substrait

import (
	"context"
	"embed"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/Intel-bigdata/velox/pkg/common/moerr"
)

//go:embed extensions/*.yaml
var builtinExtensions embed.FS

// ArgumentKind tells how a function argument participates in the
// signature.
type ArgumentKind int

const (
	// ValueArgument is a runtime value with a declared type.
	ValueArgument ArgumentKind = iota
	// TypeArgument is a compile-time type parameter.
	TypeArgument
	// EnumArgument is a compile-time option string.
	EnumArgument
)

// Argument is one declared argument of a function variant.
type Argument struct {
	Kind     ArgumentKind
	Typ      *SType
	Required bool
}

// signature returns the token this argument contributes to the
// variant's signature key.
func (a *Argument) signature() string {
	switch a.Kind {
	case EnumArgument:
		if a.Required {
			return "req"
		}
		return "opt"
	case TypeArgument:
		return "type"
	default:
		return a.Typ.Signature()
	}
}

// FunctionVariant is one implementation of a catalog function.
type FunctionVariant struct {
	Name string
	// URI is the catalog file the variant was loaded from.
	URI        string
	Args       []*Argument
	ReturnType *SType
	// Intermediate is the accumulator type of an aggregate variant,
	// nil for scalar functions and aggregates without one.
	Intermediate *SType
	Aggregate    bool
}

// RequiredArgs drops the trailing optional enum arguments; those may
// be omitted at the call site.
func (v *FunctionVariant) RequiredArgs() []*Argument {
	n := len(v.Args)
	for n > 0 {
		a := v.Args[n-1]
		if a.Kind == EnumArgument && !a.Required {
			n--
			continue
		}
		break
	}
	return v.Args[:n]
}

// Signature returns the variant's key, "name:tok1_tok2". A zero
// argument variant keeps the trailing colon.
func (v *FunctionVariant) Signature() string {
	toks := make([]string, len(v.Args))
	for i, a := range v.Args {
		toks[i] = a.signature()
	}
	return signatureKey(v.Name, toks)
}

// RequiredSignature is the key over the required arguments only.
// Trailing optional enums may be omitted at the call site, so a
// variant carrying them answers to this shorter key as well.
func (v *FunctionVariant) RequiredSignature() string {
	args := v.RequiredArgs()
	toks := make([]string, len(args))
	for i, a := range args {
		toks[i] = a.signature()
	}
	return signatureKey(v.Name, toks)
}

// IntermediateSignature is the single-argument key over the
// accumulator type, empty when the variant has none.
func (v *FunctionVariant) IntermediateSignature() string {
	if v.Intermediate == nil {
		return ""
	}
	return signatureKey(v.Name, []string{v.Intermediate.Signature()})
}

// HasWildcard reports whether any value argument is a wildcard symbol.
func (v *FunctionVariant) HasWildcard() bool {
	for _, a := range v.Args {
		if a.Kind == ValueArgument && a.Typ.IsWildcard() {
			return true
		}
	}
	return false
}

func signatureKey(name string, toks []string) string {
	if len(toks) == 0 {
		return name + ":"
	}
	return name + ":" + strings.Join(toks, "_")
}

// TypeVariant is a user-defined type declared by a catalog file.
type TypeVariant struct {
	Name string
	URI  string
}

// Extension is a loaded function catalog.
type Extension struct {
	ScalarFunctions    []*FunctionVariant
	AggregateFunctions []*FunctionVariant
	Types              []*TypeVariant
}

// yaml decode targets, shaped after the extension file layout.
type extensionFile struct {
	Types              []typeSpec     `yaml:"types"`
	ScalarFunctions    []functionSpec `yaml:"scalar_functions"`
	AggregateFunctions []functionSpec `yaml:"aggregate_functions"`
}

type typeSpec struct {
	Name string `yaml:"name"`
}

type functionSpec struct {
	Name  string     `yaml:"name"`
	Impls []implSpec `yaml:"impls"`
}

type implSpec struct {
	Args         []argSpec `yaml:"args"`
	Intermediate string    `yaml:"intermediate"`
	Return       string    `yaml:"return"`
}

type argSpec struct {
	Name     string   `yaml:"name"`
	Value    string   `yaml:"value"`
	Type     string   `yaml:"type"`
	Options  []string `yaml:"options"`
	Required bool     `yaml:"required"`
}

// LoadExtension builds the catalog from the embedded extension files.
func LoadExtension(ctx context.Context) (*Extension, error) {
	entries, err := builtinExtensions.ReadDir("extensions")
	if err != nil {
		return nil, moerr.NewInternalError(ctx, "read embedded extensions: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	ext := &Extension{}
	for _, name := range names {
		data, err := builtinExtensions.ReadFile("extensions/" + name)
		if err != nil {
			return nil, moerr.NewInternalError(ctx, "read embedded extension %s: %v", name, err)
		}
		if err := ext.mergeFile(ctx, name, data); err != nil {
			return nil, err
		}
	}
	return ext, nil
}

// LoadExtensionFiles builds the catalog from the embedded files plus
// extra extension files on disk.
func LoadExtensionFiles(ctx context.Context, paths ...string) (*Extension, error) {
	ext, err := LoadExtension(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, moerr.NewBadConfig(ctx, "read extension file %s: %v", p, err)
		}
		if err := ext.mergeFile(ctx, filepath.Base(p), data); err != nil {
			return nil, err
		}
	}
	return ext, nil
}

func (e *Extension) mergeFile(ctx context.Context, uri string, data []byte) error {
	var file extensionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return moerr.NewBadConfig(ctx, "parse extension %s: %v", uri, err)
	}
	for _, t := range file.Types {
		e.Types = append(e.Types, &TypeVariant{Name: t.Name, URI: uri})
	}
	scalars, err := decodeFunctions(ctx, uri, file.ScalarFunctions, false)
	if err != nil {
		return err
	}
	e.ScalarFunctions = append(e.ScalarFunctions, scalars...)
	aggs, err := decodeFunctions(ctx, uri, file.AggregateFunctions, true)
	if err != nil {
		return err
	}
	e.AggregateFunctions = append(e.AggregateFunctions, aggs...)
	return nil
}

func decodeFunctions(ctx context.Context, uri string, specs []functionSpec, aggregate bool) ([]*FunctionVariant, error) {
	var out []*FunctionVariant
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, moerr.NewBadConfig(ctx, "extension %s declares a function without a name", uri)
		}
		for _, impl := range spec.Impls {
			v := &FunctionVariant{Name: spec.Name, URI: uri, Aggregate: aggregate}
			for _, arg := range impl.Args {
				a, err := decodeArgument(ctx, uri, spec.Name, arg)
				if err != nil {
					return nil, err
				}
				v.Args = append(v.Args, a)
			}
			if impl.Return != "" {
				ret, err := DecodeType(ctx, impl.Return)
				if err != nil {
					return nil, err
				}
				v.ReturnType = ret
			}
			if impl.Intermediate != "" {
				mid, err := DecodeType(ctx, impl.Intermediate)
				if err != nil {
					return nil, err
				}
				v.Intermediate = mid
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func decodeArgument(ctx context.Context, uri, fn string, arg argSpec) (*Argument, error) {
	switch {
	case arg.Value != "":
		t, err := DecodeType(ctx, arg.Value)
		if err != nil {
			return nil, err
		}
		return &Argument{Kind: ValueArgument, Typ: t}, nil
	case arg.Type != "":
		t, err := DecodeType(ctx, arg.Type)
		if err != nil {
			return nil, err
		}
		return &Argument{Kind: TypeArgument, Typ: t}, nil
	case len(arg.Options) > 0:
		return &Argument{Kind: EnumArgument, Required: arg.Required}, nil
	default:
		return nil, moerr.NewBadConfig(ctx, "extension %s: function %s has an argument with no value, type or options", uri, fn)
	}
}
