package main

import "usersapi/cmd/client/cmd"

func main() {
	cmd.Execute()
}
