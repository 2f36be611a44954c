package ports

import "github.com/aalvaropc/ventmap/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
