// Package flexon is the top level entry point for the flexon data
// interchange library. It ties the lower level packages together:
// [parse] turns bytes into [data.Data] without ever failing, [encode]
// renders data back out, and this package adds document level
// operations such as JSON patching on top of them.
//
// Most programs only need the functions here:
//
//	d := flexon.DecodeString(`{greeting: "hello", answer: 42}`)
//	fmt.Println(d.Get("answer").AsInt()) // 42
//	fmt.Println(flexon.EncodeString(d, encode.Wire()))
package flexon
