package random_test

import (
	"fmt"

	"github.com/maynagashev/go-rangerand/pkg/random"
)

// Пример броска игральной кости.
func Example_dice() {
	dice := random.New(1, 6, random.WithStep(1))

	v := dice.Take()
	fmt.Println(v >= 1 && v <= 6 && v == float64(int(v)))
	// Output: true
}

// Пример разбора и сериализации диапазона.
func Example_parse() {
	r, err := random.Parse(`{"min": 0.5, "max": 0, "step": 0.1, "usfpp": true}`)
	if err != nil {
		fmt.Printf("Ошибка разбора: %v\n", err)
		return
	}

	fmt.Println(r.Center(), r.HalfWidth())
	fmt.Println(r)
	// Output:
	// 0.25 0.25
	// {
	//   "min": 0,
	//   "max": 0.5,
	//   "step": 0.1,
	//   "usfpp": true
	// }
}

// Пример чтения ленивой последовательности до первого совпадения.
func Example_all() {
	coin := random.New(0, 1, random.WithStep(1))

	for v := range coin.All() {
		if v == 1 {
			fmt.Println("heads")
			break
		}
	}
	// Output: heads
}
