// Package noexit содержит анализатор, который запрещает завершать процесс
// прямо из функции main пакета main: os.Exit и log.Fatal* обходят defer,
// поэтому логгер и хранилище не успевают закрыться.
package noexit

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// forbidden функции, завершающие процесс.
var forbidden = map[string]bool{
	"os.Exit":      true,
	"log.Fatal":    true,
	"log.Fatalf":   true,
	"log.Fatalln":  true,
	"syscall.Exit": true,
}

// Analyzer запрещает os.Exit и log.Fatal* в функции main.
var Analyzer = &analysis.Analyzer{
	Name: "noexit",
	Doc:  "запрещает os.Exit и log.Fatal в функции main пакета main",
	Run:  run,
}

// NewAnalyzer возвращает анализатор noexit.
func NewAnalyzer() *analysis.Analyzer {
	return Analyzer
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Name.Name != "main" || fn.Recv != nil || fn.Body == nil {
				continue
			}

			ast.Inspect(fn.Body, func(n ast.Node) bool {
				// вызовы внутри замыканий не в счёт
				if _, ok := n.(*ast.FuncLit); ok {
					return false
				}
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				if f, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func); ok && forbidden[f.FullName()] {
					pass.Reportf(call.Pos(), "вызов %s в функции main запрещён", f.FullName())
				}
				return true
			})
		}
	}
	return nil, nil
}
