package dryioc

import (
	"reflect"
	"testing"
)

func TestParentServiceKeyEquals(t *testing.T) {
	root := NewRootRequest(TypeOf[userStore](), nil)
	keyed := root.Push(TypeOf[userRepo](), "primary", nil, false)
	dep := keyed.Push(TypeOf[auditLog](), nil, nil, false)

	cond := ParentServiceKeyEquals{Key: "primary"}

	if !cond.Evaluate(dep) {
		t.Error("Expected eligibility when the parent request carries key 'primary'")
	}

	// Requested directly at the root there is no such parent.
	direct := NewRootRequest(TypeOf[auditLog](), nil)
	if cond.Evaluate(direct) {
		t.Error("Expected no eligibility for a directly rooted chain")
	}

	// A parent with a different key does not match either.
	other := root.Push(TypeOf[userRepo](), "replica", nil, false).Push(TypeOf[auditLog](), nil, nil, false)
	if cond.Evaluate(other) {
		t.Error("Expected no eligibility when the parent key differs")
	}
}

func TestAtResolutionRoot(t *testing.T) {
	cond := AtResolutionRoot{}

	root := NewRootRequest(TypeOf[userStore](), nil)
	if !cond.Evaluate(root) {
		t.Error("Expected eligibility at the resolution root")
	}
	if cond.Evaluate(root.Push(TypeOf[userRepo](), nil, nil, false)) {
		t.Error("Expected no eligibility below the root")
	}
}

func TestParentImplementationIs(t *testing.T) {
	type pgRepo struct{}
	impl := reflect.TypeOf(pgRepo{})

	root := NewRootRequest(TypeOf[userStore](), nil)
	withImpl := root.Push(TypeOf[userRepo](), nil, impl, false)
	dep := withImpl.Push(TypeOf[auditLog](), nil, nil, false)

	if !(ParentImplementationIs{Type: impl}).Evaluate(dep) {
		t.Error("Expected eligibility when parent resolved to the given implementation")
	}
	if (ParentImplementationIs{Type: impl}).Evaluate(withImpl) {
		t.Error("Root parent has no implementation; expected no eligibility")
	}
	if (ParentImplementationIs{Type: impl}).Evaluate(root) {
		t.Error("Expected no eligibility at the root")
	}
}

func TestAncestorServiceTypeIs(t *testing.T) {
	leaf := buildChain() // userStore -> userRepo -> auditLog

	if !(AncestorServiceTypeIs{Type: TypeOf[userStore]()}).Evaluate(leaf) {
		t.Error("Expected the root service type to be found among ancestors")
	}
	if !(AncestorServiceTypeIs{Type: TypeOf[userRepo]()}).Evaluate(leaf) {
		t.Error("Expected the intermediate service type to be found among ancestors")
	}
	if (AncestorServiceTypeIs{Type: TypeOf[auditLog]()}).Evaluate(leaf) {
		t.Error("The current request itself should not count as an ancestor")
	}
}

func TestConditionFunc(t *testing.T) {
	depthAtMost := func(max int) Condition {
		return ConditionFunc(func(request *RequestInfo) bool {
			return request.Depth() <= max
		})
	}

	leaf := buildChain()
	if !depthAtMost(2).Evaluate(leaf) {
		t.Error("Expected depth 2 to satisfy max 2")
	}
	if depthAtMost(1).Evaluate(leaf) {
		t.Error("Expected depth 2 to fail max 1")
	}
}

func TestEvaluationIsDeterministic(t *testing.T) {
	leaf := buildChain()
	conditions := []Condition{
		AtResolutionRoot{},
		ParentServiceKeyEquals{Key: "primary"},
		ParentImplementationIs{Type: TypeOf[userRepo]()},
		AncestorServiceTypeIs{Type: TypeOf[userStore]()},
	}

	for _, cond := range conditions {
		first := cond.Evaluate(leaf)
		for i := 0; i < 10; i++ {
			if cond.Evaluate(leaf) != first {
				t.Errorf("Condition %T returned different results on repeated evaluation", cond)
				break
			}
		}
	}
}

func TestStructurallyIdenticalChainsEvaluateEqually(t *testing.T) {
	build := func() *RequestInfo {
		return NewRootRequest(TypeOf[userStore](), nil).
			Push(TypeOf[userRepo](), "primary", nil, false).
			Push(TypeOf[auditLog](), nil, nil, false)
	}
	a, b := build(), build()

	conditions := []Condition{
		AtResolutionRoot{},
		ParentServiceKeyEquals{Key: "primary"},
		AncestorServiceTypeIs{Type: TypeOf[userRepo]()},
	}
	for _, cond := range conditions {
		if cond.Evaluate(a) != cond.Evaluate(b) {
			t.Errorf("Condition %T distinguished structurally identical chains", cond)
		}
	}
}
