package collections_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-underbar/collections"
)

func ExampleEach() {
	m := collections.MappingOf(
		collections.Pair[string, int]{First: "a", Second: 1},
		collections.Pair[string, int]{First: "b", Second: 2},
	)
	collections.Each(m, func(v int, k string, _ collections.Collection[string, int]) {
		fmt.Printf("%s=%d\n", k, v)
	})
	// Output:
	// a=1
	// b=2
}

func ExampleReduce() {
	sum := collections.Reduce(
		collections.Seq(1, 2, 3, 4, 5),
		func(acc, n, _ int) int { return acc + n },
		0,
	)
	fmt.Println(sum)
	// Output: 15
}

func ExampleReduceFirst() {
	v, ok := collections.ReduceFirst(
		collections.Seq(5),
		func(acc, n, _ int) int { return acc + n*n },
	)
	fmt.Println(v, ok)
	// Output: 5 true
}

func ExampleFilter() {
	evens := collections.Filter(collections.Seq(1, 2, 3, 4, 5, 6),
		func(n int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2,4,6]
}

func ExampleMap() {
	squares := collections.Map(
		collections.Seq(1, 2, 3),
		func(n, _ int) string { return strconv.Itoa(n * n) },
	)
	fmt.Println([]string(squares))
	// Output: [1 4 9]
}

func ExamplePluck() {
	type user struct {
		Name string
		Age  int
	}
	users := collections.Seq(user{"Ann", 31}, user{"Ben", 27})
	fmt.Println([]any(collections.Pluck(users, "Name")))
	// Output: [Ann Ben]
}

func ExampleSome() {
	fmt.Println(collections.Some(collections.Seq(0, 0, 3)))
	fmt.Println(collections.Every(collections.Seq(0, 0, 3)))
	// Output:
	// true
	// false
}

func ExampleExtend() {
	target := collections.MappingOf(collections.Pair[string, int]{First: "a", Second: 1})
	collections.Extend(target, collections.MappingOf(
		collections.Pair[string, int]{First: "a", Second: 2},
		collections.Pair[string, int]{First: "b", Second: 3},
	))
	fmt.Println(target)
	// Output: {"a":2,"b":3}
}

func ExampleDefaults() {
	target := collections.MappingOf(collections.Pair[string, int]{First: "a", Second: 1})
	collections.Defaults(target, collections.MappingOf(
		collections.Pair[string, int]{First: "a", Second: 2},
		collections.Pair[string, int]{First: "b", Second: 3},
	))
	fmt.Println(target)
	// Output: {"a":1,"b":3}
}
