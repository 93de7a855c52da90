package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-underbar/arr"
)

func ExampleUniq() {
	fmt.Println(arr.Uniq([]int{1, 2, 1, 3, 2}, false))
	// Output: [1 2 3]
}

func ExampleZip() {
	for _, row := range arr.Zip([]any{"a", "b", "c", "d"}, []any{1, 2, 3}) {
		fmt.Println(row)
	}
	// Output:
	// [a 1]
	// [b 2]
	// [c 3]
	// [d <nil>]
}

func ExampleFlatten() {
	fmt.Println(arr.Flatten([]any{1, []any{2}, []any{3, []any{[]any{4}}}}))
	// Output: [1 2 3 4]
}

func ExampleIntersection() {
	fmt.Println(arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4}))
	// Output: [2 3]
}

func ExampleDifference() {
	fmt.Println(arr.Difference([]int{1, 2, 3}, []int{2, 3}))
	// Output: [1]
}

func ExampleSortBy() {
	words := []string{"banana", "fig", "apple", "kiwi"}
	fmt.Println(arr.SortBy(words, func(s string) int { return len(s) }))
	// Output: [fig kiwi apple banana]
}

func ExampleSortByProperty() {
	type city struct {
		Name string
		Pop  int
	}
	cities := []city{{"Oslo", 700}, {"Lima", 10000}, {"Bern", 130}}
	for _, c := range arr.SortByProperty(cities, "Pop") {
		fmt.Println(c.Name)
	}
	// Output:
	// Bern
	// Oslo
	// Lima
}

func ExampleInvokeMethod() {
	fmt.Println(arr.InvokeMethod([]counter{{1}, {2}}, "Plus", 40))
	// Output: [41 42]
}

func ExampleLastN() {
	fmt.Println(arr.LastN([]int{1, 2, 3, 4}, 2))
	// Output: [3 4]
}

func ExampleDefaults() {
	opts := arr.Defaults(map[string]int{"retries": 5}, map[string]int{"retries": 3, "timeout": 30})
	fmt.Println(opts["retries"], opts["timeout"])
	// Output: 5 30
}
