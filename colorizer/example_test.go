package colorizer_test

import (
	"fmt"
	"strconv"

	"github.com/philipp01105/idlog/colorizer"
)

func ExampleColorizer_Colorize() {
	c := colorizer.New(colorizer.Options{Decorate: true})

	fmt.Println(strconv.Quote(c.Colorize("[abcd] connected")))
	fmt.Println(strconv.Quote(c.Colorize("[wxyz] hello")))
	fmt.Println(c.Colorize("no brackets here"))
	// Output:
	// "\x1b[91m[abcd]\x1b[39m connected"
	// "\x1b[92m[wxyz]\x1b[39m hello"
	// no brackets here
}
