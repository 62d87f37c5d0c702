// Command larctl creates, fills and unpacks LAR firmware archives.
package main

func main() {
	execute()
}
