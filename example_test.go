package slre_test

import (
	"fmt"

	"github.com/cesanta/slre"
)

func ExampleMatch() {
	n, err := slre.Match(`\d+`, []byte("order 42 shipped"), nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)
	// Output:
	// 8
}

func ExampleMatch_captures() {
	caps := make([]slre.Capture, 2)
	_, err := slre.Match(`(\d+)-(\d+)`, []byte("range 10-20"), caps)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(caps[0].String(), caps[1].String())
	// Output:
	// 10 20
}

func ExampleMatchString() {
	_, err := slre.MatchString(`(?i)hello`, "HELLO world", nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("matched")
	// Output:
	// matched
}
