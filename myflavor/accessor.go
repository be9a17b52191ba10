package myflavor

import "github.com/go-sif/flavor"

// Zach groups the greeting methods under the "zach" namespace.
// It refers to, but does not own, the DataFrame it was built from.
type Zach struct {
	printer *Flavor
	df      flavor.DataFrame
}

// Zach binds a new Zach accessor to df
func (f *Flavor) Zach(df flavor.DataFrame) *Zach {
	return &Zach{printer: f, df: df}
}

// NewZach binds a new Zach accessor, printing to stdout, to df
func NewZach(df flavor.DataFrame) *Zach {
	return std.Zach(df)
}

// DataFrame returns the DataFrame this accessor was bound to
func (z *Zach) DataFrame() flavor.DataFrame {
	return z.df
}

// Func1 prints HelloMessage and returns the bound DataFrame
func (z *Zach) Func1() (flavor.DataFrame, error) {
	return z.printer.ZachFunc1(z.df)
}

// Func2 prints FlavorMessage and returns the bound DataFrame
func (z *Zach) Func2() (flavor.DataFrame, error) {
	return z.printer.ZachFunc2(z.df)
}
