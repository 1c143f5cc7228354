package asset

// Kind distinguishes the classes of visual asset a handle can refer to.
type Kind uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind

const (
	KindInvalid Kind = iota
	KindMesh
	KindMaterial
)
