package main

import "github.com/cloud-ru/autobudget-go/cmd"

func main() {
	cmd.Execute()
}
