// Command regolden rewrites the startup generator golden files. Run it from
// the module root:
//
//	go run ./cmd/regolden
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"goa.design/chunkstartup/codegen/startup"
	"goa.design/chunkstartup/codegen/startup/scenarios"
)

func main() {
	dir := filepath.Join("codegen", "startup", "testdata", "golden")
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	must(os.MkdirAll(dir, 0o750))

	for _, s := range scenarios.All() {
		golden := filepath.Join(dir, s.GoldenFile())
		if err := os.WriteFile(golden, []byte(startup.Generate(s.Request)), 0600); err != nil {
			panic(fmt.Errorf("write golden: %w", err))
		}
		fmt.Println("Updated:", golden)
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
