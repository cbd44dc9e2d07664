// Command hqp drives the Latin square toolkit from the shell: partial
// square completion, transversal filling and chaining, Hadamard
// products, stability indices and isomorphism search, plus yaml
// scenario files batching several of them.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:]))
}
