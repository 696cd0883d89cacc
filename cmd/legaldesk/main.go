package main

import "legaldesk/cmd/legaldesk/cmd"

func main() {
	cmd.Execute()
}
