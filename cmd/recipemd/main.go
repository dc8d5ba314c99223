package main

import "github.com/goliatone/go-recipemd/cmd/recipemd/cmd"

func main() {
	cmd.Execute()
}
