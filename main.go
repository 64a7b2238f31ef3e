/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/tanaplatform/tanafmt/cmd"

func main() {
	cmd.Execute()
}
