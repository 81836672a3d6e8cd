package rooms_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/samdwyer/rooms"
)

// The smallest valid grid holds a single big cell, so the walk retires
// immediately and the epicenter doubles as the only treasure site.
func ExampleGenerate() {
	opts := rooms.Options{Width: 2, Height: 2, Chance: 1, MaxHeads: 3, Seed: 7}
	layout, err := rooms.Generate(context.Background(), opts)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(layout.RoomCount(), layout.DoorCount(), layout.TreasureCount())
	fmt.Print(layout)
	// Output:
	// 1 0 1
	// @
}

// Without a seed each run draws its own and echoes it, so a layout worth
// keeping can be regenerated later.
func ExampleGenerate_defaults() {
	layout, err := rooms.Generate(context.Background(), rooms.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("seed %d carved %d rooms\n", layout.Seed, layout.RoomCount())
}

func ExampleOptions_Validate() {
	err := rooms.Options{Width: 1, Height: 1, MaxHeads: 1}.Validate()
	fmt.Println(errors.Is(err, rooms.ErrInvalidConfiguration))
	// Output:
	// true
}
