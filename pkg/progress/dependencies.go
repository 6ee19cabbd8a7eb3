package progress

import (
	"github.com/vango-dev/progressus/pkg/host"

	perrors "github.com/vango-dev/progressus/internal/errors"
)

// Role identifies one of the container's child elements.
type Role string

const (
	RoleProgress Role = "progress"
	RoleText     Role = "text"
	RoleValue    Role = "value"
)

// Dependency describes a child element the widget binds to.
type Dependency struct {
	Role     Role
	Class    string
	Required bool
}

// Dependencies lists the container's children in creation order.
var Dependencies = []Dependency{
	{Role: RoleProgress, Class: "progress-bar-progress", Required: true},
	{Role: RoleText, Class: "progress-bar-text", Required: false},
	{Role: RoleValue, Class: "progress-bar-value", Required: false},
}

const (
	modeDiscovered = "discovered"
	modeCreated    = "created"
)

// bindDependencies discovers the children of a populated container or
// creates them in an empty one. The result is indexed like Dependencies;
// absent optional children are nil.
func bindDependencies(doc host.Document, container host.Node) ([]host.Node, string, error) {
	if container.HasChildNodes() {
		nodes, err := discoverDependencies(container)
		return nodes, modeDiscovered, err
	}
	return createDependencies(doc, container), modeCreated, nil
}

func discoverDependencies(container host.Node) ([]host.Node, error) {
	nodes := make([]host.Node, 0, len(Dependencies))
	for _, dep := range Dependencies {
		var node host.Node
		if found := container.ElementsByClassName(dep.Class); len(found) > 0 {
			node = found[0]
		}
		if dep.Required && node == nil {
			return nil, perrors.New("P003").WithInput(dep.Class)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func createDependencies(doc host.Document, container host.Node) []host.Node {
	nodes := make([]host.Node, 0, len(Dependencies))
	for _, dep := range Dependencies {
		node := doc.CreateElement("div")
		node.SetClassName(dep.Class)
		nodes = append(nodes, node)
		container.AppendChild(node)
	}
	return nodes
}
