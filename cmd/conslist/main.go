package main

import "fmt"

func main() {
	fmt.Println("use 'go test ./...' to check")
}
