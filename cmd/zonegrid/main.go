// Package main implements the zonegrid terminal client: the same zone
// comparison grid as the web view, rendered as a table.
package main

func main() {
	Execute()
}
