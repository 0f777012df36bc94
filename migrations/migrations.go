// Package migrations встраивает SQL-файлы схемы в бинарник.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
