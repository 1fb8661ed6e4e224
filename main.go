package main

import "github.com/ghalymotors/showroom/cmd"

func main() {
	cmd.Execute()
}
