package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/ChristopherRabotin/elp"
)

func TestGenerate(t *testing.T) {
	src, err := generate(elp.Principal())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(src), "go:build") {
		t.Fatal("generated tables must not carry a build constraint")
	}
	f, err := parser.ParseFile(token.NewFileSet(), "tables_full.go", src, 0)
	if err != nil {
		t.Fatalf("generated source does not parse: %s", err)
	}
	if f.Name.Name != "elp" {
		t.Fatalf("package %s", f.Name.Name)
	}
	decls := map[string]bool{}
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			decls[d.Name.Name] = true
		case *ast.GenDecl:
			for _, sp := range d.Specs {
				if vs, ok := sp.(*ast.ValueSpec); ok {
					for _, n := range vs.Names {
						decls[n.Name] = true
					}
				}
			}
		}
	}
	for _, name := range []string{"init", "elpSeries", "elp1", "elp3", "elp10", "elp19", "elp36"} {
		if !decls[name] {
			t.Errorf("%s not declared", name)
		}
	}
	if decls["elp7"] {
		t.Error("empty series must not be declared")
	}
	if !strings.Contains(string(src), "completeSeries = elpSeries") {
		t.Error("generated tables do not register themselves")
	}
}
