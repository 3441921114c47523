package main

import "html-banner-generator/cmd"

func main() {
	cmd.Execute()
}
