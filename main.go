/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/campuschat/campuschat/cmd"

func main() {
	cmd.Execute()
}
