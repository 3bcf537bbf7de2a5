package utils

import (
	"path/filepath"
	"runtime"
)

// ResolveFile returns the path of fn relative to the root of the module, so tests can find
// fixtures such as config/data/bench_arm.json regardless of their working directory.
func ResolveFile(fn string) string {
	//nolint:dogsled
	_, thisFilePath, _, _ := runtime.Caller(0)
	thisDirPath, err := filepath.Abs(filepath.Dir(thisFilePath))
	if err != nil {
		panic(err)
	}
	return filepath.Join(thisDirPath, "..", fn)
}
