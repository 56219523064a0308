// nxncube - CLI simulator for N×N×N Rubik's cubes.
package main

import (
	"github.com/SeamusWaldron/nxncube/internal/cli"
)

func main() {
	cli.Execute()
}
