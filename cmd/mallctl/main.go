package main

import "github.com/hqh-mall/mallclient/cmd/mallctl/cmd"

func main() {
	cmd.Execute()
}
