package registry

import (
	"sort"
	"sync"

	"github.com/go-sif/flavor"
	"github.com/go-sif/flavor/errors"
	"github.com/go-sif/flavor/logging"
)

const (
	methodKind   = "method"
	accessorKind = "accessor"
)

// Conf configures a Registry
type Conf struct {
	AllowOverride bool            // If true, re-registering a name replaces the previous entry and logs a warning. Defaults to false, which fails with a NameCollisionError.
	Logger        *logging.Logger // Destination for registration messages. Defaults to WarnLevel on stderr.
}

// Registry holds named DataFrame methods and accessors
type Registry struct {
	conf      *Conf
	lock      sync.RWMutex
	methods   map[string]flavor.DataFrameOperation
	accessors map[string]flavor.AccessorFactory
}

// CreateRegistry returns a new, empty Registry
func CreateRegistry(conf *Conf) *Registry {
	if conf == nil {
		conf = &Conf{}
	}
	conf = &Conf{AllowOverride: conf.AllowOverride, Logger: conf.Logger}
	if conf.Logger == nil {
		conf.Logger = logging.CreateLogger(nil, "registry", logging.WarnLevel)
	}
	return &Registry{
		conf:      conf,
		methods:   make(map[string]flavor.DataFrameOperation),
		accessors: make(map[string]flavor.AccessorFactory),
	}
}

// RegisterMethod makes op callable by name on any DataFrame
func (r *Registry) RegisterMethod(name string, op flavor.DataFrameOperation) error {
	if len(name) == 0 || op == nil {
		return errors.NilRegistrationError{Kind: methodKind, Name: name}
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, exists := r.methods[name]; exists {
		if !r.conf.AllowOverride {
			return errors.NameCollisionError{Kind: methodKind, Name: name}
		}
		r.conf.Logger.Warnf("registration of method %s is overriding a preexisting method", name)
	}
	r.methods[name] = op
	r.conf.Logger.Debugf("registered method %s", name)
	return nil
}

// RegisterAccessor makes the Accessor produced by factory available by name on any DataFrame
func (r *Registry) RegisterAccessor(name string, factory flavor.AccessorFactory) error {
	if len(name) == 0 || factory == nil {
		return errors.NilRegistrationError{Kind: accessorKind, Name: name}
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, exists := r.accessors[name]; exists {
		if !r.conf.AllowOverride {
			return errors.NameCollisionError{Kind: accessorKind, Name: name}
		}
		r.conf.Logger.Warnf("registration of accessor %s is overriding a preexisting accessor", name)
	}
	r.accessors[name] = factory
	r.conf.Logger.Debugf("registered accessor %s", name)
	return nil
}

// Method looks up a registered method
func (r *Registry) Method(name string) (flavor.DataFrameOperation, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	op, ok := r.methods[name]
	return op, ok
}

// Call invokes the named method on df. Errors produced by the method are returned as-is.
func (r *Registry) Call(name string, df flavor.DataFrame) (flavor.DataFrame, error) {
	op, ok := r.Method(name)
	if !ok {
		return nil, errors.UnknownMethodError{Name: name}
	}
	return op(df)
}

// Accessor constructs the named Accessor, bound to df
func (r *Registry) Accessor(name string, df flavor.DataFrame) (flavor.Accessor, error) {
	r.lock.RLock()
	factory, ok := r.accessors[name]
	r.lock.RUnlock()
	if !ok {
		return nil, errors.UnknownAccessorError{Name: name}
	}
	return factory(df), nil
}

// Methods returns the sorted names of all registered methods
func (r *Registry) Methods() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Accessors returns the sorted names of all registered accessors
func (r *Registry) Accessors() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	names := make([]string, 0, len(r.accessors))
	for name := range r.accessors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
