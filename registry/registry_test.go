package registry

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"testing"

	"github.com/go-sif/flavor"
	"github.com/go-sif/flavor/errors"
	"github.com/go-sif/flavor/frame"
	"github.com/go-sif/flavor/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

type testAccessor struct{ df flavor.DataFrame }

func (a *testAccessor) DataFrame() flavor.DataFrame { return a.df }

func identity(df flavor.DataFrame) (flavor.DataFrame, error) { return df, nil }

func createTestRegistry(conf *Conf) *Registry {
	if conf.Logger == nil {
		conf.Logger = logging.CreateLogger(ioutil.Discard, "registry", logging.TraceLevel)
	}
	return CreateRegistry(conf)
}

func TestRegisterAndCallMethod(t *testing.T) {
	r := createTestRegistry(&Conf{})
	require.Nil(t, r.RegisterMethod("identity", identity))
	df := frame.CreateDataFrame(frame.CreateSchema())
	result, err := r.Call("identity", df)
	require.Nil(t, err)
	require.Same(t, df, result)
}

func TestCallPropagatesMethodError(t *testing.T) {
	r := createTestRegistry(&Conf{})
	methodErr := fmt.Errorf("method failed")
	require.Nil(t, r.RegisterMethod("fails", func(df flavor.DataFrame) (flavor.DataFrame, error) {
		return df, methodErr
	}))
	_, err := r.Call("fails", frame.CreateDataFrame(frame.CreateSchema()))
	require.Equal(t, methodErr, err)
}

func TestUnknownNames(t *testing.T) {
	r := createTestRegistry(&Conf{})
	df := frame.CreateDataFrame(frame.CreateSchema())
	_, err := r.Call("missing", df)
	require.Equal(t, errors.UnknownMethodError{Name: "missing"}, err)
	_, err = r.Accessor("missing", df)
	require.Equal(t, errors.UnknownAccessorError{Name: "missing"}, err)
	_, ok := r.Method("missing")
	require.False(t, ok)
}

func TestNilRegistrations(t *testing.T) {
	r := createTestRegistry(&Conf{})
	require.Equal(t, errors.NilRegistrationError{Kind: "method", Name: ""}, r.RegisterMethod("", identity))
	require.Equal(t, errors.NilRegistrationError{Kind: "method", Name: "m"}, r.RegisterMethod("m", nil))
	require.Equal(t, errors.NilRegistrationError{Kind: "accessor", Name: "a"}, r.RegisterAccessor("a", nil))
	require.Empty(t, r.Methods())
	require.Empty(t, r.Accessors())
}

func TestNameCollision(t *testing.T) {
	r := createTestRegistry(&Conf{})
	require.Nil(t, r.RegisterMethod("m", identity))
	require.Equal(t, errors.NameCollisionError{Kind: "method", Name: "m"}, r.RegisterMethod("m", identity))

	factory := func(df flavor.DataFrame) flavor.Accessor { return &testAccessor{df} }
	require.Nil(t, r.RegisterAccessor("a", factory))
	require.Equal(t, errors.NameCollisionError{Kind: "accessor", Name: "a"}, r.RegisterAccessor("a", factory))

	// methods and accessors live in separate namespaces
	require.Nil(t, r.RegisterAccessor("m", factory))
}

func TestAllowOverrideWarns(t *testing.T) {
	var buf bytes.Buffer
	r := createTestRegistry(&Conf{
		AllowOverride: true,
		Logger:        logging.CreateLogger(&buf, "registry", logging.WarnLevel),
	})
	require.Nil(t, r.RegisterMethod("m", identity))
	require.Zero(t, buf.Len())

	replacementErr := fmt.Errorf("replaced")
	require.Nil(t, r.RegisterMethod("m", func(df flavor.DataFrame) (flavor.DataFrame, error) {
		return df, replacementErr
	}))
	require.Contains(t, buf.String(), "overriding a preexisting method")
	_, err := r.Call("m", frame.CreateDataFrame(frame.CreateSchema()))
	require.Equal(t, replacementErr, err)
}

func TestAccessorBindsDataFrame(t *testing.T) {
	r := createTestRegistry(&Conf{})
	require.Nil(t, r.RegisterAccessor("a", func(df flavor.DataFrame) flavor.Accessor {
		return &testAccessor{df}
	}))
	df1 := frame.CreateDataFrame(frame.CreateSchema())
	df2 := frame.CreateDataFrame(frame.CreateSchema())
	a1, err := r.Accessor("a", df1)
	require.Nil(t, err)
	a2, err := r.Accessor("a", df2)
	require.Nil(t, err)
	require.Same(t, df1, a1.DataFrame())
	require.Same(t, df2, a2.DataFrame())
}

func TestNamesAreSorted(t *testing.T) {
	r := createTestRegistry(&Conf{})
	for _, name := range []string{"c", "a", "b"} {
		require.Nil(t, r.RegisterMethod(name, identity))
	}
	require.Equal(t, []string{"a", "b", "c"}, r.Methods())
}

func TestDefaultRegistry(t *testing.T) {
	require.Same(t, Default(), Default())
	name := "default_registry_identity"
	require.Nil(t, RegisterDataFrameMethod(name, identity))
	require.NotNil(t, RegisterDataFrameMethod(name, identity))
	require.Nil(t, RegisterDataFrameAccessor(name, func(df flavor.DataFrame) flavor.Accessor {
		return &testAccessor{df}
	}))
	_, ok := Default().Method(name)
	require.True(t, ok)
}

func TestConcurrentRegistrationAndLookup(t *testing.T) {
	defer goleak.VerifyNone(t)
	r := createTestRegistry(&Conf{})
	df := frame.CreateDataFrame(frame.CreateSchema())
	var eg errgroup.Group
	for i := 0; i < 32; i++ {
		name := fmt.Sprintf("m%02d", i)
		eg.Go(func() error {
			if err := r.RegisterMethod(name, identity); err != nil {
				return err
			}
			result, err := r.Call(name, df)
			if err != nil {
				return err
			}
			if result != flavor.DataFrame(df) {
				return fmt.Errorf("method %s did not return its input", name)
			}
			return nil
		})
	}
	require.Nil(t, eg.Wait())
	require.Len(t, r.Methods(), 32)
}

func TestCreateRegistryLeavesConfUntouched(t *testing.T) {
	conf := &Conf{AllowOverride: true}
	r := CreateRegistry(conf)
	require.Nil(t, conf.Logger)
	require.NotNil(t, r.conf.Logger)
	require.True(t, r.conf.AllowOverride)

	// a shared Conf yields independent Registries
	other := CreateRegistry(conf)
	require.NotSame(t, r.conf, other.conf)
}
