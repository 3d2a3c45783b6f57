// Command relayctl runs single turns through the relay from a terminal.
package main

func main() {
	Execute()
}
