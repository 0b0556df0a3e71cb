package main

import "github.com/secrethunter/secrethunter/cmd/secrethunter"

func main() { secrethunter.Execute() }
