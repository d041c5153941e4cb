// xmlsmith CLI - command-line front end for the xmlsmith XML toolkit
package main

import (
	"github.com/xmlsmith/xmlsmith/pkg/cli"
)

func main() {
	cli.Execute()
}
