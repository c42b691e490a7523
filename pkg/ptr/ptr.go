// Package ptr utilitário para obter ponteiros de literais.
package ptr

// Ptr devolve um ponteiro para v
func Ptr[T any](v T) *T {
	return &v
}
