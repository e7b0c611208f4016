// cmd/ddlgen/ddlgen.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"storefront/internal/adapters/out/db"
)

func mustWrite(path string, content string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		panic(err)
	}
}

func main() {
	outDir := flag.String("out", filepath.Join("internal", "infra", "database", "migrations"), "output directory")
	flag.Parse()

	for _, dialect := range []string{db.DialectPostgres, db.DialectSQLite} {
		stmts, err := db.DDL(dialect)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		out := filepath.Join(*outDir, "init_reports_"+dialect+".sql")
		mustWrite(out, strings.Join(stmts, ";\n\n")+";\n")
		fmt.Println("Generated:", out)
	}
}
