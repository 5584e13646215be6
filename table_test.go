package pdf

import "testing"

func TestTableAllocAndBind(t *testing.T) {
	tab := NewTable(V1_7)
	ref := tab.Alloc()
	if ref.Number != 1 {
		t.Fatalf("first Alloc() = %v, want object 1", ref)
	}

	if err := tab.Bind(ref, Dict{{"Type", Name("Catalog")}}); err != nil {
		t.Fatal(err)
	}

	if err := tab.Bind(ref, Dict{}); err != ErrAlreadyBound {
		t.Errorf("re-bind: got %v, want ErrAlreadyBound", err)
	}

	v, ok := tab.Resolve(ref)
	if !ok {
		t.Fatal("Resolve: object not found")
	}
	d, ok := v.(Dict)
	typ, _ := d.Get("Type")
	if !ok || typ != Name("Catalog") {
		t.Errorf("Resolve() = %#v, want the bound dict", v)
	}
}

func TestTablePutOrdering(t *testing.T) {
	tab := NewTable(V1_7)
	var refs []Reference
	for i := 0; i < 5; i++ {
		ref, err := tab.Put(Integer(i))
		if err != nil {
			t.Fatal(err)
		}
		refs = append(refs, ref)
	}

	order := tab.numberOrder()
	if len(order) != 5 {
		t.Fatalf("numberOrder() has %d entries, want 5", len(order))
	}
	for i, n := range order {
		if n != refs[i].Number {
			t.Errorf("numberOrder()[%d] = %d, want %d", i, n, refs[i].Number)
		}
	}
}

func TestTableFreezeRejectsMutation(t *testing.T) {
	tab := NewTable(V1_7)
	ref := tab.Alloc()
	tab.freeze()

	if err := tab.Bind(ref, Null{}); err != ErrAlreadyFrozen {
		t.Errorf("Bind after freeze: got %v, want ErrAlreadyFrozen", err)
	}
}
