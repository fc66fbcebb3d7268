package main

import "github.com/plantworks/facilityops/cmd"

func main() {
	cmd.Execute()
}
