package myflavor

import (
	"github.com/go-sif/flavor"
	"github.com/go-sif/flavor/registry"
	"github.com/hashicorp/go-multierror"
)

// Register adds this Flavor's methods and accessor to r. Every registration is attempted;
// failures are collected and returned together.
func (f *Flavor) Register(r *registry.Registry) error {
	var multierr *multierror.Error
	if err := r.RegisterMethod(MethodFunc1Name, f.ZachFunc1); err != nil {
		multierr = multierror.Append(multierr, err)
	}
	if err := r.RegisterMethod(MethodFunc2Name, f.ZachFunc2); err != nil {
		multierr = multierror.Append(multierr, err)
	}
	err := r.RegisterAccessor(AccessorName, func(df flavor.DataFrame) flavor.Accessor {
		return f.Zach(df)
	})
	if err != nil {
		multierr = multierror.Append(multierr, err)
	}
	return multierr.ErrorOrNil()
}

// Register adds the stdout-printing methods and accessor to r
func Register(r *registry.Registry) error {
	return std.Register(r)
}
