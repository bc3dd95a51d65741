package matcher

import (
	"fmt"
	"os"
	"path/filepath"
)

var matchDebugEnv = os.Getenv("FFIND_DEBUG_MATCH") == "1"
var matchDebugFile = os.Getenv("FFIND_DEBUG_MATCH_FILE")

func matchDebugEnabled() bool {
	return matchDebugEnv
}

func matchLogf(format string, args ...any) {
	if matchDebugFile == "" {
		fmt.Printf("[match-debug] "+format+"\n", args...)
		return
	}
	abspath := matchDebugFile
	if !filepath.IsAbs(abspath) {
		cwd, err := os.Getwd()
		if err == nil {
			abspath = filepath.Join(cwd, matchDebugFile)
		}
	}
	f, err := os.OpenFile(abspath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Printf("[match-debug] open file error: %v\n", err)
		fmt.Printf("[match-debug] "+format+"\n", args...)
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Printf("[match-debug] close file error: %v\n", cerr)
		}
	}()
	if _, err := fmt.Fprintf(f, "[match-debug] "+format+"\n", args...); err != nil {
		fmt.Printf("[match-debug] write file error: %v\n", err)
	}
}
