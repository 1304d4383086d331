package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"
	"github.com/viant/dslx/cmd"
)

// Version is set at build time
var Version = "dev"

func main() {
	if err := cmd.New(Version, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		log.Fatal(err)
	}
}
