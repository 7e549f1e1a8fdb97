// Command glogger-demo writes a handful of sample records through the glib
// adapter, so each variant, domain policy and backend can be compared side by
// side.
package main

import "os"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
