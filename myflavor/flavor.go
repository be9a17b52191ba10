package myflavor

import (
	"fmt"
	"io"
	"os"

	"github.com/go-sif/flavor"
)

const (
	// MethodFunc1Name is the registered name of ZachFunc1
	MethodFunc1Name = "zach_func1"
	// MethodFunc2Name is the registered name of ZachFunc2
	MethodFunc2Name = "zach_func2"
	// AccessorName is the registered name of the Zach accessor
	AccessorName = "zach"
	// HelloMessage is printed by ZachFunc1 and Zach.Func1
	HelloMessage = "Hello, everyone!\n"
	// FlavorMessage is printed by ZachFunc2 and Zach.Func2
	FlavorMessage = "Check out my flavor of Pandas"
)

// Conf configures a Flavor
type Conf struct {
	Out io.Writer // Destination for greetings. Defaults to os.Stdout, resolved at the time of each write.
}

// Flavor prints greetings on behalf of DataFrame methods
type Flavor struct {
	conf *Conf
}

// CreateFlavor returns a new Flavor
func CreateFlavor(conf *Conf) *Flavor {
	if conf == nil {
		conf = &Conf{}
	}
	return &Flavor{conf: conf}
}

func (f *Flavor) out() io.Writer {
	if f.conf.Out == nil {
		return os.Stdout
	}
	return f.conf.Out
}

// println writes msg followed by a newline, as a console print would
func (f *Flavor) println(msg string) error {
	_, err := fmt.Fprintln(f.out(), msg)
	return err
}

// ZachFunc1 prints HelloMessage and returns df. A failed write is returned alongside df.
func (f *Flavor) ZachFunc1(df flavor.DataFrame) (flavor.DataFrame, error) {
	return df, f.println(HelloMessage)
}

// ZachFunc2 prints FlavorMessage and returns df. A failed write is returned alongside df.
func (f *Flavor) ZachFunc2(df flavor.DataFrame) (flavor.DataFrame, error) {
	return df, f.println(FlavorMessage)
}

var std = CreateFlavor(&Conf{})

// ZachFunc1 prints HelloMessage to stdout and returns df
func ZachFunc1(df flavor.DataFrame) (flavor.DataFrame, error) {
	return std.ZachFunc1(df)
}

// ZachFunc2 prints FlavorMessage to stdout and returns df
func ZachFunc2(df flavor.DataFrame) (flavor.DataFrame, error) {
	return std.ZachFunc2(df)
}
