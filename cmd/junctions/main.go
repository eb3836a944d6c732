// Command junctions clusters 3-D points read from a file or stdin.
//
//	junctions solve input.txt
//	junctions cluster --budget 10 input.txt
//	junctions connect - < input.txt
package main

import "github.com/katalvlaran/junctionforest/internal/cli"

func main() {
	cli.Execute()
}
