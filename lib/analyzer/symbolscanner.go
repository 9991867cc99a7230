package analyzer

import (
	"github.com/arminrejzovic/bosscript/lib/ast"
)

// ScanSymbols is a shallow pass over the top level of a program. It maps each
// declared name to its kind and lists imported packages in source order.
// Names brought in by `paket "x" { a, b }` are reported as "import".
func ScanSymbols(statements []ast.Statement) (map[string]string, []string) {
	symbols := make(map[string]string)
	var imports []string
	for _, statement := range statements {
		switch s := statement.(type) {
		case *ast.ModelDefinitionStatement:
			symbols[s.Name.Symbol] = "model"
		case *ast.TypeDefinitionStatement:
			symbols[s.Name.Symbol] = "type"
		case *ast.FunctionDeclaration:
			symbols[s.Name.Symbol] = "function"
		case *ast.VariableStatement:
			kind := "variable"
			if s.Constant {
				kind = "constant"
			}
			for _, d := range s.Declarations {
				symbols[d.Name] = kind
			}
		case *ast.ImportStatement:
			imports = append(imports, s.Package)
			for _, id := range s.Imports {
				symbols[id.Symbol] = "import"
			}
		}
	}
	return symbols, imports
}
