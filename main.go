package main

import "github.com/EspressoSystems/lightclient-go/cmd"

func main() {
	cmd.Execute()
}
