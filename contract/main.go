////////////////////////////////////////////////////////////////////////////////
// Donation Registry: an on-chain donation registry for the vsc network
// creators register named projects, donors forward value to the creator,
// every mutation leaves a log line for off-chain replay
////////////////////////////////////////////////////////////////////////////////

package main

// main is left empty on purpose
func main() {

}
