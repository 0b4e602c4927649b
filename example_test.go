package gbln_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/mcncl/gbln"
	"github.com/mcncl/gbln/config"
)

func ExampleParse() {
	d, err := gbln.Parse("user{id<u32>(123)name<s64>(Alice)}")
	if err != nil {
		fmt.Println(err)
		return
	}

	user := d.(map[string]any)["user"].(map[string]any)
	fmt.Printf("%v %T %v\n", user["id"], user["id"], user["name"])
	// Output: 123 float64 Alice
}

func ExampleParse_error() {
	_, err := gbln.Parse("user{id<u8>(256)}")
	fmt.Println(err)
	fmt.Println(errors.Is(err, gbln.ErrDecode))
	// Output:
	// Parse error: invalid u8 value "256" at 1:13
	// true
}

func ExampleToString() {
	text, err := gbln.ToString(map[string]any{
		"name":  "Alice",
		"age":   30.0,
		"score": -1.5,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(text)
	// Output: age<u8>(30)name<s64>(Alice)score<f64>(-1.5)
}

func ExampleToStringPretty() {
	text, err := gbln.ToStringPretty(map[string]any{
		"id":   7.0,
		"tags": []any{"a", "b"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(text)
	// Output:
	// id<u8>(7)
	// tags[
	//   <s64>(a)
	//   <s64>(b)
	// ]
}

func ExampleInferNumber() {
	fmt.Println(gbln.InferNumber(255), gbln.InferNumber(256), gbln.InferNumber(-129), gbln.InferNumber(3.14))
	// Output: U8(255) U16(256) I16(-129) F64(3.14)
}

func ExampleNew() {
	cfg := config.NewConfig()
	cfg.Numbers.NonFinite = config.NonFiniteReject

	b, err := gbln.New(gbln.WithConfig(cfg))
	if err != nil {
		fmt.Println(err)
		return
	}

	_, err = b.ToString(map[string]any{"ratio": math.NaN()})
	fmt.Println(err)
	// Output: Non-finite number rejected: NaN at $.ratio
}
