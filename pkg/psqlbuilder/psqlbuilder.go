// Package psqlbuilder expõe o squirrel pré-configurado com placeholders
// do Postgres ($1, $2, ...), para os repositórios não repetirem o setup.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select inicia um SELECT com placeholders $N
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert inicia um INSERT com placeholders $N
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update inicia um UPDATE com placeholders $N
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete inicia um DELETE com placeholders $N
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
