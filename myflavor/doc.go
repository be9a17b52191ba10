// Package myflavor is an example flavor: two DataFrame methods and one accessor,
// each of which greets the console and hands the DataFrame back untouched.
package myflavor
