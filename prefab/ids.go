package prefab

import "github.com/binzume/urhoconv/urho"

// Fixed component ids of the scene infrastructure.
const (
	sceneID          = 1
	octreeID         = 1
	debugRendererID  = 2
	skyboxID         = 4
	navigationMeshID = 5
	physicsWorldID   = 6
	lightID          = 7
)

// idAllocator hands out local node and component ids. It lives for one document.
type idAllocator struct {
	node      int
	component int
}

func newIDAllocator() *idAllocator {
	return &idAllocator{node: urho.FirstLocalID, component: urho.FirstLocalID}
}

func (a *idAllocator) nextNode() int {
	id := a.node
	a.node++
	return id
}

func (a *idAllocator) nextComponent() int {
	id := a.component
	a.component++
	return id
}
