package dryioc

import (
	"reflect"
	"testing"
)

type userStore interface{ User(id string) any }
type userRepo interface{ Find(id string) any }
type auditLog interface{ Record(msg string) }

func buildChain() *RequestInfo {
	root := NewRootRequest(TypeOf[userStore](), nil)
	mid := root.Push(TypeOf[userRepo](), "primary", nil, false)
	return mid.Push(TypeOf[auditLog](), nil, nil, false)
}

func TestChainVisitsEachAncestorOnce(t *testing.T) {
	leaf := buildChain()

	var visited []*RequestInfo
	for node := range leaf.Chain() {
		visited = append(visited, node)
	}

	if len(visited) != 3 {
		t.Fatalf("Expected 3 nodes in chain, got %d", len(visited))
	}

	seen := make(map[*RequestInfo]int)
	for _, node := range visited {
		seen[node]++
	}
	for node, count := range seen {
		if count != 1 {
			t.Errorf("Node %s visited %d times, expected exactly once", node.describe(), count)
		}
	}

	last := visited[len(visited)-1]
	if !last.IsRoot() {
		t.Error("Traversal should terminate at a node with no parent")
	}
}

func TestChainOrderIsCurrentToRoot(t *testing.T) {
	leaf := buildChain()

	var types []reflect.Type
	for node := range leaf.Chain() {
		types = append(types, node.ServiceType())
	}

	expected := []reflect.Type{TypeOf[auditLog](), TypeOf[userRepo](), TypeOf[userStore]()}
	if !reflect.DeepEqual(types, expected) {
		t.Errorf("Expected traversal order %v, got %v", expected, types)
	}
}

func TestRootOnlyChainYieldsOneElement(t *testing.T) {
	root := NewRootRequest(TypeOf[userStore](), nil)

	count := 0
	for node := range root.Chain() {
		if node != root {
			t.Error("Root-only chain should yield the root itself")
		}
		count++
	}

	if count != 1 {
		t.Errorf("Expected exactly 1 element, got %d", count)
	}
}

func TestChainIsRestartable(t *testing.T) {
	leaf := buildChain()
	seq := leaf.Chain()

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}

	if first != second {
		t.Errorf("Second iteration yielded %d nodes, first yielded %d", second, first)
	}
}

func TestChainEarlyBreak(t *testing.T) {
	leaf := buildChain()

	count := 0
	for range leaf.Chain() {
		count++
		break
	}

	if count != 1 {
		t.Errorf("Expected break after 1 node, iterated %d", count)
	}
}

func TestPushDoesNotMutateParent(t *testing.T) {
	root := NewRootRequest(TypeOf[userStore](), "root-key")
	child := root.Push(TypeOf[userRepo](), "primary", nil, false)

	if child == root {
		t.Fatal("Push should create a new node")
	}
	if !root.IsRoot() {
		t.Error("Root should remain a root after Push")
	}
	if root.ServiceKey() != "root-key" {
		t.Errorf("Root key changed after Push: %v", root.ServiceKey())
	}

	parent, ok := child.Parent()
	if !ok || parent != root {
		t.Error("Child's parent should be the original root node")
	}
}

func TestSharedTails(t *testing.T) {
	// Two extensions from the same node share their tail without
	// interfering with each other.
	root := NewRootRequest(TypeOf[userStore](), nil)
	a := root.Push(TypeOf[userRepo](), "a", nil, false)
	b := root.Push(TypeOf[userRepo](), "b", nil, true)

	aParent, _ := a.Parent()
	bParent, _ := b.Parent()
	if aParent != bParent {
		t.Error("Siblings should share the same parent node")
	}
	if a.ServiceKey() == b.ServiceKey() {
		t.Error("Sibling nodes should keep their own keys")
	}
	if a.IsDecoratorOrWrapper() || !b.IsDecoratorOrWrapper() {
		t.Error("Decorator flag should be per-node")
	}
}

func TestDepth(t *testing.T) {
	root := NewRootRequest(TypeOf[userStore](), nil)
	if root.Depth() != 0 {
		t.Errorf("Expected root depth 0, got %d", root.Depth())
	}

	leaf := buildChain()
	if leaf.Depth() != 2 {
		t.Errorf("Expected leaf depth 2, got %d", leaf.Depth())
	}
}

func TestRequestAccessors(t *testing.T) {
	impl := reflect.TypeOf(struct{ name string }{})
	req := NewRootRequest(TypeOf[userStore](), nil).Push(TypeOf[userRepo](), "primary", impl, true)

	if req.ServiceType() != TypeOf[userRepo]() {
		t.Errorf("Unexpected service type: %v", req.ServiceType())
	}
	if req.ServiceKey() != "primary" {
		t.Errorf("Unexpected service key: %v", req.ServiceKey())
	}
	if req.ImplementationType() != impl {
		t.Errorf("Unexpected implementation type: %v", req.ImplementationType())
	}
	if !req.IsDecoratorOrWrapper() {
		t.Error("Expected decorator flag to be set")
	}
	if req.IsRoot() {
		t.Error("Pushed node should not be a root")
	}
}

func TestStringReadsRootFirst(t *testing.T) {
	leaf := buildChain()

	got := leaf.String()
	want := "dryioc.userStore -> dryioc.userRepo(key=primary) -> dryioc.auditLog"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
