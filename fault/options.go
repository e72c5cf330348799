package fault

// Option configures a Mapper during construction via New().
type Option func(*Mapper)

// defaultMaxErrors bounds the number of Errors one MapChain call produces.
const defaultMaxErrors = 64

// CodeFunc supplies the code for a fault. Returning false defers to the
// call-site and type-name strategies.
type CodeFunc func(err error) (code string, ok bool)

// WithMaxErrors caps how many faults a single chain walk maps.
// Values below 1 are ignored.
func WithMaxErrors(n int) Option {
	return func(m *Mapper) {
		if n > 0 {
			m.maxErrors = n
		}
	}
}

// WithCodeFunc installs a code strategy that runs before the built-in ones.
func WithCodeFunc(fn CodeFunc) Option { return func(m *Mapper) { m.codeFunc = fn } }

// WithoutJoined stops the walk at multi-errors (Unwrap() []error): the joined
// fault itself is mapped, its members are not.
func WithoutJoined() Option { return func(m *Mapper) { m.skipJoined = true } }
