package ports

import "github.com/aalvaropc/ventmap/internal/domain"

type InputCatalog interface {
	ListInputs(root string) ([]domain.InputRef, error)
}
