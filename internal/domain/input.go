package domain

// InputRef is a lightweight reference to a segment input file in a workspace.
type InputRef struct {
	Name string
	Path string
	// Segments is the number of non-blank lines, not validated.
	Segments int
}

// WorkspaceSpec describes where to lay out a new workspace.
type WorkspaceSpec struct {
	Root string
}
