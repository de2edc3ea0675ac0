// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"hello/internal/message": {
			"hello/internal/", "hello/cmd/",
			"github.com/spf13/cobra", "go.uber.org/zap",
		},
		"hello/internal/writers": {
			"hello/internal/", "hello/cmd/",
		},
		"hello/internal/emitter": {
			"hello/internal/app", "hello/internal/appshell", "hello/cmd/",
			"github.com/spf13/cobra",
		},
		"hello/internal/app": {
			"hello/internal/appshell", "hello/cmd/",
		},
	}

	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		banned, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, imp := range p.Imports {
			for _, b := range banned {
				if strings.HasPrefix(imp, b) {
					t.Errorf("%s must not import %s", p.ImportPath, imp)
				}
			}
		}
	}
}
