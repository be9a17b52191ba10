package flavor

// An Accessor groups a set of methods under a namespace and binds
// them to a single DataFrame when constructed.
type Accessor interface {
	DataFrame() DataFrame // DataFrame returns the DataFrame this Accessor was bound to
}
