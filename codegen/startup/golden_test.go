package startup_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"goa.design/chunkstartup/codegen/jscheck"
	"goa.design/chunkstartup/codegen/startup"
	"goa.design/chunkstartup/codegen/startup/scenarios"
	"goa.design/chunkstartup/codegen/testhelpers"
)

func TestGolden(t *testing.T) {
	for _, sc := range scenarios.All() {
		t.Run(sc.Name, func(t *testing.T) {
			code := startup.Generate(sc.Request)
			require.NoError(t, jscheck.Validate(code))
			testhelpers.AssertGolden(t, filepath.Join("testdata", "golden", sc.GoldenFile()), code)
		})
	}
}
