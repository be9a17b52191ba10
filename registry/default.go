package registry

import "github.com/go-sif/flavor"

var defaultRegistry = CreateRegistry(&Conf{})

// Default returns the process-wide Registry
func Default() *Registry {
	return defaultRegistry
}

// RegisterDataFrameMethod registers op on the Default Registry
func RegisterDataFrameMethod(name string, op flavor.DataFrameOperation) error {
	return defaultRegistry.RegisterMethod(name, op)
}

// RegisterDataFrameAccessor registers factory on the Default Registry
func RegisterDataFrameAccessor(name string, factory flavor.AccessorFactory) error {
	return defaultRegistry.RegisterAccessor(name, factory)
}
