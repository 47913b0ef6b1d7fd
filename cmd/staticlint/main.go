// Package main запускает multichecker проекта.
//
// Он включает:
// - анализаторы go/analysis/passes (shadow, structtag, nilness, printf, errorsas, lostcancel, httpresponse)
// - все SA-анализаторы staticcheck
// - S1000 и U1000
// - bodyclose: незакрытые тела HTTP-ответов
// - noexit: os.Exit и log.Fatal в функции main
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/unused"

	"github.com/Totarae/SecondBrain/cmd/staticlint/noexit"
)

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		errorsas.Analyzer,
		lostcancel.Analyzer,
		httpresponse.Analyzer,
	}

	// SA-анализаторы
	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			list = append(list, a.Analyzer)
		}
	}

	// не-SA: упрощение select с одним case и неиспользуемый код
	for _, a := range simple.Analyzers {
		if a.Analyzer.Name == "S1000" {
			list = append(list, a.Analyzer)
		}
	}
	list = append(list, unused.Analyzer.Analyzer)

	return append(list, bodyclose.Analyzer, noexit.NewAnalyzer())
}
