package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// forbiddenExits функции, завершающие процесс в обход отложенных вызовов.
var forbiddenExits = map[string]map[string]bool{ //nolint:gochecknoglobals
	"os":  {"Exit": true},
	"log": {"Fatal": true, "Fatalf": true, "Fatalln": true},
}

// NoExitInMain запрещает os.Exit и log.Fatal* в функции main пакета main:
// они пропускают graceful shutdown сервера и закрытие хранилища.
var NoExitInMain = &analysis.Analyzer{ //nolint:gochecknoglobals
	Name: "noexitinmain",
	Doc:  "check for os.Exit and log.Fatal calls in main function",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil //nolint:nilnil
	}
	for _, file := range pass.Files {
		if strings.Contains(pass.Fset.Position(file.Pos()).Filename, "go-build") {
			continue
		}
		for _, decl := range file.Decls {
			funcDecl, ok := decl.(*ast.FuncDecl)
			if !ok || funcDecl.Recv != nil || funcDecl.Name.Name != "main" || funcDecl.Body == nil {
				continue
			}
			ast.Inspect(funcDecl.Body, func(n ast.Node) bool {
				callExpr, isCall := n.(*ast.CallExpr)
				if !isCall {
					return true
				}
				if name, bad := forbiddenCall(pass, callExpr); bad {
					pass.Reportf(callExpr.Pos(), "direct call %s is not allowed in main function", name)
				}
				return true
			})
		}
	}
	return nil, nil //nolint:nilnil
}

// forbiddenCall определяет вызов по объекту пакета, поэтому переименованный импорт тоже ловится.
func forbiddenCall(pass *analysis.Pass, call *ast.CallExpr) (string, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return "", false
	}
	names, ok := forbiddenExits[fn.Pkg().Path()]
	if !ok || !names[fn.Name()] {
		return "", false
	}
	return fn.Pkg().Path() + "." + fn.Name(), true
}
