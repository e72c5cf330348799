// Package fault maps Go errors and their chains of causes into ordered
// lists of result Errors.
package fault

import (
	"reflect"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"

	apiError "github.com/next-trace/scg-result/error"
)

// Mapper turns faults into Errors. The zero value is not usable; call New.
type Mapper struct {
	maxErrors  int
	codeFunc   CodeFunc
	skipJoined bool
}

var defaultMapper = New()

// New creates a Mapper with the given options applied over the defaults.
func New(opts ...Option) *Mapper {
	m := &Mapper{maxErrors: defaultMaxErrors}
	for _, o := range opts {
		o(m)
	}

	return m
}

// MapChain maps err and its chain of causes using the default Mapper.
func MapChain(err error) []*apiError.Error { return defaultMapper.MapChain(err) }

// MapOne maps a single fault using the default Mapper.
func MapOne(err error) *apiError.Error { return defaultMapper.MapOne(err) }

// MapChain produces one Error per fault in the chain, outermost first.
//
// Links are followed through Unwrap() error, or Cause() error for faults that
// only expose the legacy pkg/errors accessor. Multi-errors (Unwrap() []error)
// are walked depth-first, left to right. A nil err yields nil.
func (m *Mapper) MapChain(err error) []*apiError.Error {
	if err == nil {
		return nil
	}

	return m.walk(err, nil)
}

func (m *Mapper) walk(err error, out []*apiError.Error) []*apiError.Error {
	var prev error

	for steps := 0; err != nil && len(out) < m.maxErrors && steps < 2*m.maxErrors; steps++ {
		// A typed nil has no chain to follow and its methods may not be callable.
		if isNilValue(err) {
			return append(out, m.MapOne(err))
		}

		if !restates(prev, err) {
			out = append(out, m.MapOne(err))
		}

		prev = err

		switch x := err.(type) {
		case interface{ Unwrap() []error }:
			if m.skipJoined {
				return out
			}

			for _, inner := range x.Unwrap() {
				out = m.walk(inner, out)
			}

			return out
		case interface{ Unwrap() error }:
			err = x.Unwrap()
		case interface{ Cause() error }:
			err = x.Cause()
		default:
			err = nil
		}
	}

	return out
}

// MapOne converts a single fault, ignoring its causes.
//
// An *apiError.Error is returned as-is. Otherwise the code is, in order: the
// configured CodeFunc, the "<type>.<method>" call site recorded in a
// pkg/errors stack trace, or the fault's type name. The description is the
// fault's message and the cause is the fault itself. A nil err yields nil.
// A typed nil (e.g. a nil *apiError.Error stored in an error) maps to an
// Error named after its type, without cause.
func (m *Mapper) MapOne(err error) *apiError.Error {
	if err == nil {
		return nil
	}

	if isNilValue(err) {
		return apiError.New(typeName(err), message(err))
	}

	if e, ok := err.(*apiError.Error); ok {
		return e
	}

	return apiError.New(m.codeOf(err), err.Error(), err)
}

func (m *Mapper) codeOf(err error) string {
	if m.codeFunc != nil {
		if code, ok := m.codeFunc(err); ok {
			return code
		}
	}

	if site, ok := callSite(err); ok {
		return site
	}

	return typeName(err)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// pkgErrorsPath is the import path of github.com/pkg/errors as the runtime
// reports it.
var pkgErrorsPath = reflect.TypeOf(pkgerrors.New("")).Elem().PkgPath()

// restates reports whether err is the message half of a pkg/errors
// Wrap/Wrapf: a withMessage directly below a stack-carrying fault with the
// same text. Wrap makes one fault out of the pair, so only the outer is mapped.
func restates(prev, err error) bool {
	if prev == nil {
		return false
	}

	if _, ok := prev.(stackTracer); !ok {
		return false
	}

	if _, ok := err.(stackTracer); ok {
		return false
	}

	t := reflect.TypeOf(err)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.PkgPath() == pkgErrorsPath && t.Name() == "withMessage" && prev.Error() == err.Error()
}

func isNilValue(err error) bool {
	v := reflect.ValueOf(err)

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// message returns err.Error(), or "<nil>" when the method cannot cope with a
// nil receiver.
func message(err error) (msg string) {
	defer func() {
		if recover() != nil {
			msg = "<nil>"
		}
	}()

	return err.Error()
}

// callSite reports the function that created err, when err carries a stack
// of its own. Stacks further down the chain belong to other faults.
func callSite(err error) (string, bool) {
	st, ok := err.(stackTracer)
	if !ok {
		return "", false
	}

	trace := st.StackTrace()
	if len(trace) == 0 {
		return "", false
	}

	frame, _ := runtime.CallersFrames([]uintptr{uintptr(trace[0])}).Next()
	if frame.Function == "" {
		return "", false
	}

	return qualifiedName(frame.Function), true
}

// qualifiedName reduces a runtime function name to "<type>.<method>".
// Package-level functions use the package name in place of the type:
//
//	example.com/app/repo.(*Store).Load -> Store.Load
//	example.com/app/repo.Store.Load    -> Store.Load
//	example.com/app/repo.Open          -> repo.Open
//	example.com/app/repo.Open.func1    -> repo.Open
//	gopkg.in/yaml.v3.Unmarshal         -> yaml.Unmarshal
func qualifiedName(fn string) string {
	if i := strings.LastIndex(fn, "/"); i >= 0 {
		fn = fn[i+1:]
	}

	// the linker escapes dots in the last path element
	fn = strings.ReplaceAll(fn, "%2e", ".")
	fn = strings.ReplaceAll(fn, "[...]", "")

	end := packageEnd(fn)
	if end < 0 {
		return fn
	}

	pkg, rest := firstPart(fn[:end]), fn[end+1:]

	if strings.HasPrefix(rest, "(") {
		typ, method, _ := strings.Cut(rest, ").")
		typ = strings.TrimLeft(typ, "(*")

		return typ + "." + firstPart(method)
	}

	parts := strings.Split(rest, ".")
	if len(parts) == 1 || isClosure(parts[1]) {
		return pkg + "." + parts[0]
	}

	return parts[0] + "." + parts[1]
}

// packageEnd returns the index of the dot ending the package part of fn,
// stepping over version suffixes such as the ".v3" of "yaml.v3". It returns
// -1 when fn has no package part.
func packageEnd(fn string) int {
	i := strings.IndexByte(fn, '.')
	for i >= 0 {
		next := fn[i+1:]

		seg, _, more := strings.Cut(next, ".")
		if !more || !isVersion(seg) {
			return i
		}

		i += 1 + len(seg)
	}

	return -1
}

func isVersion(s string) bool {
	digits := strings.TrimPrefix(s, "v")
	if digits == s || digits == "" {
		return false
	}

	return strings.Trim(digits, "0123456789") == ""
}

func firstPart(s string) string {
	head, _, _ := strings.Cut(s, ".")
	return head
}

func isClosure(s string) bool {
	digits := strings.TrimPrefix(s, "func")
	if digits == s || digits == "" {
		return false
	}

	return strings.Trim(digits, "0123456789") == ""
}

func stripTypeArgs(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}

	return s
}

// typeName returns the unqualified dynamic type name of err, looking
// through pointers.
func typeName(err error) string {
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if name := stripTypeArgs(t.Name()); name != "" {
		return name
	}

	return t.String()
}
