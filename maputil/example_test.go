package maputil_test

import (
	"fmt"

	"github.com/nubs/primaids/maputil"
)

func ExampleFormat() {
	ages := maputil.New[int]().
		Set(maputil.StringKey("Sam"), 34).
		Set(maputil.StringKey("John"), 28)
	fmt.Print(maputil.Format(ages, "Name: {key} Age: {value}\n"))
	// Output:
	// Name: Sam Age: 34
	// Name: John Age: 28
}

func ExamplePull() {
	letters := maputil.FromSlice([]string{"a", "b", "c"})
	v, _ := maputil.Pull(letters, maputil.IntKey(1))
	fmt.Println(v)
	fmt.Println(letters.Keys())
	// Output:
	// b
	// [0 2]
}

func ExampleGetNested() {
	cfg := maputil.New[any]().
		Set(maputil.StringKey("db"), maputil.New[any]().
			Set(maputil.StringKey("login"), maputil.New[any]().
				Set(maputil.StringKey("username"), "scott")))
	v, _ := maputil.GetNested(cfg, "db.login.username")
	fmt.Println(v)
	// Output: scott
}

func ExampleRename() {
	m := maputil.FromSlice([]string{"a", "b"})
	maputil.Rename(m, maputil.IntKey(0), maputil.IntKey(2))
	fmt.Println(m)
	// Output: {"1":"b","2":"a"}
}

func ExampleGroupBy() {
	records := []*maputil.Map[any]{
		maputil.New[any]().Set(maputil.StringKey("target"), any("x")).Set(maputil.StringKey("id"), any(1)),
		maputil.New[any]().Set(maputil.StringKey("target"), any("y")).Set(maputil.StringKey("id"), any(2)),
		maputil.New[any]().Set(maputil.StringKey("target"), any("y")).Set(maputil.StringKey("id"), any(3)),
	}
	groups := maputil.GroupBy(records, maputil.StringKey("target"))
	groups.Each(func(k maputil.Key, g []*maputil.Map[any]) {
		fmt.Println(k, len(g))
	})
	// Output:
	// x 1
	// y 2
}

func ExampleOnly() {
	fruits := maputil.New[string]().
		Set(maputil.StringKey("d"), "lemon").
		Set(maputil.StringKey("a"), "orange").
		Set(maputil.StringKey("c"), "apple")
	fmt.Println(maputil.Only(fruits, maputil.StringKey("d"), maputil.StringKey("c")))
	// Output: {"d":"lemon","c":"apple"}
}

func ExampleSplit() {
	letters := maputil.FromSlice([]string{"a", "b", "c", "d", "e"})
	chunks, _ := maputil.Split(letters, 2)
	for _, c := range chunks {
		fmt.Println(c)
	}
	// Output:
	// {"0":"a","1":"b","2":"c"}
	// {"3":"d","4":"e"}
}
