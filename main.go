package main

import "github.com/YangQing-Lin/add-any-file/cmd"

func main() {
	cmd.Execute()
}
