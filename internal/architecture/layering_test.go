package architecture_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

const modulesPrefix = "watchtrainer/internal/modules/"

var layers = []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"}

// importRef is one intra-repo import seen from a module layer.
type importRef struct {
	module string
	layer  string
}

func TestModuleLayerImports(t *testing.T) {
	t.Parallel()
	fset := token.NewFileSet()
	root := filepath.Join("..", "modules")
	checked := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		from, ok := classify(filepath.ToSlash(path))
		if !ok {
			return nil
		}
		file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, spec := range file.Imports {
			target := strings.Trim(spec.Path.Value, `"`)
			rest, found := strings.CutPrefix(target, modulesPrefix)
			if !found {
				continue
			}
			to, ok := classify("modules/" + rest + "/")
			if !ok {
				continue
			}
			checked++
			if !allowed(from, to) {
				t.Errorf("%s (%s/%s) must not import %s", path, from.module, from.layer, target)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
	if checked == 0 {
		t.Fatal("no intra-module imports inspected")
	}
}

func TestAllowedRules(t *testing.T) {
	t.Parallel()
	cases := []struct {
		from, to importRef
		want     bool
	}{
		{importRef{"goal", "usecase"}, importRef{"goal", "service"}, true},
		{importRef{"goal", "usecase"}, importRef{"goal", "adapter/out"}, false},
		{importRef{"goal", "service"}, importRef{"history", "domain"}, true},
		{importRef{"goal", "service"}, importRef{"history", "service"}, false},
		{importRef{"coach", "adapter/out"}, importRef{"weather", "port/in"}, true},
		{importRef{"coach", "adapter/out"}, importRef{"weather", "adapter/out"}, false},
		{importRef{"stats", "adapter/in"}, importRef{"stats", "domain"}, false},
		{importRef{"stats", "adapter/in"}, importRef{"stats", "dto"}, true},
		{importRef{"workout", "domain"}, importRef{"workout", "port/out"}, true},
		{importRef{"workout", "domain"}, importRef{"workout", "usecase"}, false},
	}
	for _, tc := range cases {
		if got := allowed(tc.from, tc.to); got != tc.want {
			t.Errorf("allowed(%v, %v) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func classify(path string) (importRef, bool) {
	_, rest, ok := strings.Cut(path, "modules/")
	if !ok {
		return importRef{}, false
	}
	module, _, _ := strings.Cut(rest, "/")
	for _, layer := range layers {
		if strings.Contains(path, "/"+layer+"/") {
			return importRef{module: module, layer: layer}, true
		}
	}
	return importRef{}, false
}

func allowed(from, to importRef) bool {
	if from.module != to.module {
		switch to.layer {
		case "port/in", "dto":
			return true
		case "domain":
			return from.layer != "adapter/in"
		default:
			return false
		}
	}
	switch from.layer {
	case "adapter/in":
		return to.layer == "port/in" || to.layer == "dto"
	case "usecase":
		return !strings.HasPrefix(to.layer, "adapter/")
	case "service":
		return !strings.HasPrefix(to.layer, "adapter/") && to.layer != "usecase"
	case "domain":
		return to.layer == "domain" || to.layer == "port/out" || to.layer == "dto"
	default:
		return true
	}
}
