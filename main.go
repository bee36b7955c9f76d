package main

import "github.com/KaramelBytes/fanova-csv/cmd"

func main() {
	cmd.Execute()
}
